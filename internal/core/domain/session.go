package domain

// CheckoutSession is the storefront state of one transaction at a crew terminal.
type CheckoutSession struct {
	SessionID    string
	Cart         Cart
	CustomerType CustomerType
	Currency     Currency
	Seat         Seat
	AuditFields
}

// Clone returns a copy whose cart can be mutated independently.
func (s CheckoutSession) Clone() CheckoutSession {
	s.Cart = s.Cart.Clone()
	return s
}
