package domain

import "fmt"

// Status is the project stage of an order. The progression is advisory:
// any status may follow any other.
type Status string

const (
	StatusLead            Status = "Lead"
	StatusMeasurement     Status = "Measurement"
	StatusDesign          Status = "Design"
	StatusContractDeposit Status = "Contract/Deposit"
	StatusProduction      Status = "Production"
	StatusInstallation    Status = "Installation"
	StatusCompleted       Status = "Completed"
)

// Statuses lists every status in progression order.
var Statuses = []Status{
	StatusLead,
	StatusMeasurement,
	StatusDesign,
	StatusContractDeposit,
	StatusProduction,
	StatusInstallation,
	StatusCompleted,
}

func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}
