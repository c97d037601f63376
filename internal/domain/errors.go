package domain

import "errors"

var (
	ErrNotFound                  = errors.New("resource not found")
	ErrUnauthorized              = errors.New("unauthorized")
	ErrForbidden                 = errors.New("forbidden")
	ErrInvalidCredentials        = errors.New("invalid credentials")
	ErrDuplicateUsername         = errors.New("username already taken")
	ErrInvalidRole               = errors.New("invalid role")
	ErrDuplicateInvoiceNumber    = errors.New("invoice number already exists")
	ErrInvalidAmount             = errors.New("amount must be positive")
	ErrPaymentExceedsOutstanding = errors.New("payment amount exceeds invoice outstanding")
	ErrInvalidPaymentMode        = errors.New("invalid payment mode")
	ErrInvoiceAlreadyPaid        = errors.New("invoice has no outstanding balance")
	ErrUnsupportedFileType       = errors.New("unsupported file type")
	ErrMissingColumns            = errors.New("missing required columns")
	ErrFileTooLarge              = errors.New("file exceeds maximum allowed size")
	ErrEmptySelection            = errors.New("no invoices selected")
	ErrMissingEmail              = errors.New("client has no email address")
	ErrInvalidChannel            = errors.New("invalid reminder channel")
)
