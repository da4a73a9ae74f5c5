package services

// DiscountPolicy decides the monetary discount for a coupon code. Kept as
// an interface so a validating registry lookup can replace the current
// accept-everything behavior without touching the submission pipeline.
type DiscountPolicy interface {
	Apply(code string, subtotal float64) float64
}

// AcceptAllPolicy accepts any non-empty coupon code verbatim and applies
// no monetary discount. The code is still recorded on the order.
// TODO: back this with a coupon registry once one exists; stakeholders
// have not confirmed whether zero-discount coupons are intended.
type AcceptAllPolicy struct{}

func (AcceptAllPolicy) Apply(code string, subtotal float64) float64 {
	return 0
}
