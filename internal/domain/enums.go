package domain

// UserRole defines the access level of a user.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// InvoiceStatus is the derived payment status of an invoice.
type InvoiceStatus string

const (
	StatusUnpaid  InvoiceStatus = "Unpaid"
	StatusPartial InvoiceStatus = "Partial"
	StatusPaid    InvoiceStatus = "Paid"
)

// PaymentMode identifies how a payment was received.
type PaymentMode string

const (
	ModeUPI          PaymentMode = "UPI"
	ModeCash         PaymentMode = "Cash"
	ModeBankTransfer PaymentMode = "Bank Transfer"
	ModeCheque       PaymentMode = "Cheque"
	ModeOther        PaymentMode = "Other"
)

// ValidPaymentModes is the set of accepted payment modes.
var ValidPaymentModes = map[PaymentMode]bool{
	ModeUPI:          true,
	ModeCash:         true,
	ModeBankTransfer: true,
	ModeCheque:       true,
	ModeOther:        true,
}

// ReminderChannel selects how a payment reminder is delivered.
type ReminderChannel string

const (
	ChannelWhatsApp ReminderChannel = "whatsapp"
	ChannelEmail    ReminderChannel = "email"
)
