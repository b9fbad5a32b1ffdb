package bookings

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"itickets/internal/users"
)

// FlexInt is an integer field that also accepts numeric strings, so JSON
// bodies and form posts bind to the same request type. Empty means zero.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid integer %s", data)
		}
		return n.UnmarshalParam(s)
	}
	return n.UnmarshalParam(string(data))
}

// UnmarshalParam implements gin's binding.BindUnmarshaler for form values
func (n *FlexInt) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		*n = 0
		return nil
	}

	if v, err := strconv.ParseInt(param, 10, 32); err == nil {
		*n = FlexInt(v)
		return nil
	} else if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("integer %q out of range", param)
	}

	// whole numbers written as floats, e.g. 2.0
	f, err := strconv.ParseFloat(param, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("invalid integer %q", param)
	}
	*n = FlexInt(f)
	return nil
}

func (n FlexInt) Int() int {
	return int(n)
}

// MaxQuantityPerCategory caps the tickets one booking may request in a
// single category
const MaxQuantityPerCategory = 10000

// CreateBookingRequest is the body of a booking submission. Field order is
// the order validation reports missing fields in.
type CreateBookingRequest struct {
	EventID     FlexInt `json:"eventId" form:"eventId" validate:"required"`
	FullName    string  `json:"fullName" form:"fullName" validate:"notblank"`
	Email       string  `json:"email" form:"email" validate:"notblank"`
	Phone       string  `json:"phone" form:"phone" validate:"notblank"`
	IDNumber    string  `json:"idNumber" form:"idNumber" validate:"notblank"`
	StandardQty FlexInt `json:"standardQty" form:"standardQty" validate:"gte=0,lte=10000"`
	VIPQty      FlexInt `json:"vipQty" form:"vipQty" validate:"gte=0,lte=10000"`
}

// TotalQuantity is the number of tickets requested across categories
func (r *CreateBookingRequest) TotalQuantity() int {
	return r.StandardQty.Int() + r.VIPQty.Int()
}

// Customer returns the submitted identity with whitespace trimmed
func (r *CreateBookingRequest) Customer() users.CustomerDetails {
	return users.CustomerDetails{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		IDNumber: r.IDNumber,
	}.Normalize()
}
