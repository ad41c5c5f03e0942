package domain

// Departments lists the values a generated student can belong to.
var Departments = []string{"CSE", "EEE", "ECE", "IT", "MECH"}

// Student is a generated, never persisted, student record.
type Student struct {
	ID         string `json:"stuId"`
	Name       string `json:"stuName"`
	Department string `json:"stuDpt"`
}
