package controllers

// Contact is an emergency hotline.
type Contact struct {
	Service string
	Number  string
}

// EmergencyContacts are shown with every emergency report.
var EmergencyContacts = []Contact{
	{Service: "Police", Number: "911"},
	{Service: "Ambulance", Number: "112"},
	{Service: "Fire Department", Number: "911"},
}

// EmergencyReport is what a session returns when its user reports an emergency.
type EmergencyReport struct {
	Message  string
	Contacts []Contact
}

// EmergencyReporter is implemented by every role session.
type EmergencyReporter interface {
	ReportEmergency() EmergencyReport
}

func newEmergencyReport(message string) EmergencyReport {
	return EmergencyReport{Message: message, Contacts: EmergencyContacts}
}
