package dto

import (
	"fmt"
	"seastay/internal/domains/booking/model"
	"seastay/shared/constant"
	gDto "seastay/shared/dto"
	"seastay/shared/failure"
	gModel "seastay/shared/model"
	"seastay/shared/timezone"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Checkout session metadata keys. The provider echoes these back on the
// completed event, so the names must survive both directions unchanged.
const (
	MetadataKeyPropertyID = "propertyId"
	MetadataKeyCheckIn    = "checkIn"
	MetadataKeyCheckOut   = "checkOut"
	MetadataKeyAdults     = "adults"
	MetadataKeyChildren   = "children"
	MetadataKeyGuestName  = "guestName"
	MetadataKeyGuestEmail = "guestEmail"
	MetadataKeyGuestPhone = "guestPhone"
	MetadataKeyTotalPrice = "totalPrice"
)

type GuestInfo struct {
	Name  string `json:"name"  validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=100"`
	Phone string `json:"phone" validate:"omitempty,max=20"`
}

type CreateBookingRequest struct {
	PropertyID string    `json:"propertyId" validate:"required"`
	CheckIn    string    `json:"checkIn"    validate:"required"`
	CheckOut   string    `json:"checkOut"   validate:"required"`
	Adults     int       `json:"adults"     validate:"required,min=1"`
	Children   int       `json:"children"   validate:"min=0"`
	GuestInfo  GuestInfo `json:"guestInfo"  validate:"required"`
}

// StayDates parses the requested range and enforces check-out strictly after
// check-in.
func (c *CreateBookingRequest) StayDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.InvalidDateParam
	}

	checkOut, err = time.Parse(constant.DateOnlyFormat, c.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.InvalidDateParam
	}

	if !checkOut.After(checkIn) {
		return checkIn, checkOut, failure.BadRequestFromString("check-out date must be after check-in date")
	}

	return checkIn, checkOut, nil
}

// SessionMetadata flattens the request and the quoted total into the string
// map carried on the checkout session.
func (c *CreateBookingRequest) SessionMetadata(total decimal.Decimal) map[string]string {
	metadata := map[string]string{
		MetadataKeyPropertyID: c.PropertyID,
		MetadataKeyCheckIn:    c.CheckIn,
		MetadataKeyCheckOut:   c.CheckOut,
		MetadataKeyAdults:     strconv.Itoa(c.Adults),
		MetadataKeyChildren:   strconv.Itoa(c.Children),
		MetadataKeyGuestName:  c.GuestInfo.Name,
		MetadataKeyGuestEmail: c.GuestInfo.Email,
		MetadataKeyTotalPrice: total.String(),
	}

	if c.GuestInfo.Phone != "" {
		metadata[MetadataKeyGuestPhone] = c.GuestInfo.Phone
	}

	return metadata
}

// PaymentSession is a completed checkout session as reported by the payment
// provider.
type PaymentSession struct {
	ID       string
	Metadata map[string]string
}

// ToModel rebuilds the booking from the session metadata. Malformed metadata
// is a bad request: it means the event does not come from a session this
// service issued.
func (p *PaymentSession) ToModel() (model.Booking, error) {
	checkIn, err := time.Parse(constant.DateOnlyFormat, p.Metadata[MetadataKeyCheckIn])
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("invalid check-in date in session metadata: %w", err))
	}

	checkOut, err := time.Parse(constant.DateOnlyFormat, p.Metadata[MetadataKeyCheckOut])
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("invalid check-out date in session metadata: %w", err))
	}

	adults, err := strconv.Atoi(p.Metadata[MetadataKeyAdults])
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("invalid adults count in session metadata: %w", err))
	}

	children, err := strconv.Atoi(p.Metadata[MetadataKeyChildren])
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("invalid children count in session metadata: %w", err))
	}

	totalPrice, err := decimal.NewFromString(p.Metadata[MetadataKeyTotalPrice])
	if err != nil {
		return model.Booking{}, failure.BadRequest(fmt.Errorf("invalid total price in session metadata: %w", err))
	}

	return model.Booking{
		ID:               uuid.NewString(),
		PropertyID:       p.Metadata[MetadataKeyPropertyID],
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Adults:           adults,
		Children:         children,
		GuestName:        p.Metadata[MetadataKeyGuestName],
		GuestEmail:       p.Metadata[MetadataKeyGuestEmail],
		GuestPhone:       p.Metadata[MetadataKeyGuestPhone],
		TotalPrice:       totalPrice,
		Status:           model.StatusConfirmed,
		PaymentSessionID: p.ID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
		},
	}, nil
}

type CheckoutResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type BookingResponse struct {
	ID               string  `json:"id"`
	PropertyID       string  `json:"propertyId"`
	CheckIn          string  `json:"checkIn"`
	CheckOut         string  `json:"checkOut"`
	Adults           int     `json:"adults"`
	Children         int     `json:"children"`
	GuestName        string  `json:"guestName"`
	GuestEmail       string  `json:"guestEmail"`
	GuestPhone       string  `json:"guestPhone,omitempty"`
	TotalPrice       float64 `json:"totalPrice"`
	Status           string  `json:"status"`
	PaymentSessionID string  `json:"paymentSessionId"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.PropertyID = model.PropertyID
	r.CheckIn = model.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = model.CheckOut.Format(constant.DateOnlyFormat)
	r.Adults = model.Adults
	r.Children = model.Children
	r.GuestName = model.GuestName
	r.GuestEmail = model.GuestEmail
	r.GuestPhone = model.GuestPhone
	r.TotalPrice = model.TotalPrice.InexactFloat64()
	r.Status = model.Status
	r.PaymentSessionID = model.PaymentSessionID
	r.Metadata.FromModel(model.Metadata)
}
