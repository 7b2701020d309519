package entity

// Department is the closed set of units a suggestion can target.
type Department string

const (
	DeptCatering       Department = "Catering"
	DeptWelfare        Department = "Welfare"
	DeptAdministration Department = "Administration"
	DeptICT            Department = "ICT"
	DeptOthers         Department = "Others"
)
