package booking

// AvailabilityInput identifies one (shop, staff, service, date) slot query.
// Date is a shop-local "YYYY-MM-DD".
type AvailabilityInput struct {
	ProfileID uint
	StaffID   uint
	ServiceID uint
	Date      string
}
