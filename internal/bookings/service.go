package bookings

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"time"

	"itickets/internal/events"
	"itickets/internal/notifications"
	"itickets/internal/tickets"
	"itickets/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// maxBookingAmount is the first amount a numeric(12,2) column cannot hold
var maxBookingAmount = decimal.New(1, 10)

// EventCatalog resolves the event a booking is for
type EventCatalog interface {
	GetPublishedEvent(ctx context.Context, id int64) (*events.Event, error)
}

// ListingInvalidator drops cached availability after inventory changes
type ListingInvalidator interface {
	InvalidateUpcoming(ctx context.Context) error
}

// Settings tunes the booking engine
type Settings struct {
	ReferenceAttempts       int
	StandardDefaultCapacity int
	VIPDefaultCapacity      int
}

// Service interface defines the contract for booking business logic
type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingConfirmation, error)

	// Dependency injection methods
	SetPublisher(publisher notifications.Publisher)
	SetListingInvalidator(listing ListingInvalidator)
}

type service struct {
	catalog   EventCatalog
	store     Store
	refs      *ReferenceGenerator
	settings  Settings
	validate  *validator.Validate
	publisher notifications.Publisher
	listing   ListingInvalidator
	logger    *logger.Logger
}

func NewService(catalog EventCatalog, store Store, refs *ReferenceGenerator, settings Settings) Service {
	if settings.ReferenceAttempts <= 0 {
		settings.ReferenceAttempts = 5
	}
	return &service{
		catalog:   catalog,
		store:     store,
		refs:      refs,
		settings:  settings,
		validate:  newValidator(),
		publisher: notifications.NoopPublisher{},
		logger:    logger.GetDefault(),
	}
}

// SetPublisher injects the booking confirmation publisher
func (s *service) SetPublisher(publisher notifications.Publisher) {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	s.publisher = publisher
}

// SetListingInvalidator injects the catalog cache invalidation hook
func (s *service) SetListingInvalidator(listing ListingInvalidator) {
	s.listing = listing
}

// CreateBooking validates and prices the request, then records the customer,
// the booking, its line items and the inventory reservations in one
// transaction. Any failure inside the transaction leaves no trace.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingConfirmation, error) {
	log := s.logger.FromContext(ctx)

	if be := s.validateRequest(&req); be != nil {
		log.LogBookingRejected(ctx, string(be.Kind), be.Message)
		return nil, be
	}

	event, err := s.catalog.GetPublishedEvent(ctx, int64(req.EventID))
	if err != nil {
		be := eventUnavailable(err)
		if !errors.Is(err, events.ErrEventNotFound) {
			be = storageFailure("load event", err)
		}
		s.reportFailure(ctx, log, be, err)
		return nil, be
	}

	lines := s.planLines(event, &req)
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	if total.GreaterThanOrEqual(maxBookingAmount) {
		be := validationError("", "Booking total is too large. Please book fewer tickets.")
		s.reportFailure(ctx, log, be, nil)
		return nil, be
	}

	reference, err := s.refs.New()
	if err != nil {
		be := storageFailure("generate booking reference", err)
		s.reportFailure(ctx, log, be, err)
		return nil, be
	}

	customer := req.Customer()
	booking := &Booking{
		EventID:          event.ID,
		BookingReference: reference,
		FullName:         customer.FullName,
		Email:            customer.Email,
		Phone:            customer.Phone,
		IDNumber:         customer.IDNumber,
		TotalAmount:      total,
		PaymentStatus:    PaymentStatusPending,
	}

	err = s.store.WithinTransaction(ctx, func(tx Tx) error {
		customerID, err := tx.Customers.FindOrCreateCustomer(ctx, customer)
		if err != nil {
			return storageFailure("resolve customer", err)
		}
		booking.UserID = customerID

		if err := s.insertBooking(ctx, tx.Bookings, booking); err != nil {
			return err
		}

		for _, line := range lines {
			ticketTypeID, err := tx.Ledger.GetOrCreate(ctx, event.ID, line.Category, line.UnitPrice, line.Capacity)
			if err != nil {
				return storageFailure("resolve ticket type", err)
			}

			item := LineItem{
				BookingID:    booking.ID,
				TicketTypeID: ticketTypeID,
				Quantity:     line.Quantity,
				UnitPrice:    line.UnitPrice,
				Subtotal:     line.Subtotal(),
			}
			if err := tx.Bookings.AddLineItem(ctx, &item); err != nil {
				return storageFailure("record line item", err)
			}

			if err := tx.Ledger.Reserve(ctx, ticketTypeID, line.Quantity); err != nil {
				if errors.Is(err, tickets.ErrInsufficientInventory) {
					return soldOut(line.Category, err)
				}
				return storageFailure("reserve tickets", err)
			}
			booking.LineItems = append(booking.LineItems, item)
		}
		return nil
	})
	if err != nil {
		be, ok := AsBookingError(err)
		if !ok {
			be = storageFailure("booking transaction", err)
		}
		s.reportFailure(ctx, log, be, err)
		return nil, be
	}

	log.LogBookingCreated(ctx, booking.BookingReference, event.ID, booking.UserID, total.StringFixed(2))
	s.afterCommit(context.WithoutCancel(ctx), log, booking, event, &req)

	return &BookingConfirmation{
		BookingReference: booking.BookingReference,
		TotalAmount:      total.InexactFloat64(),
		EventTitle:       event.Title,
		EventDate:        event.EventDate.Format(time.RFC3339),
		Tickets: TicketCounts{
			Standard: req.StandardQty.Int(),
			VIP:      req.VIPQty.Int(),
		},
	}, nil
}

// planLines prices every requested category, standard before vip
func (s *service) planLines(event *events.Event, req *CreateBookingRequest) []linePlan {
	requested := map[tickets.Category]int{
		tickets.CategoryStandard: req.StandardQty.Int(),
		tickets.CategoryVIP:      req.VIPQty.Int(),
	}
	prices := map[tickets.Category]decimal.Decimal{
		tickets.CategoryStandard: event.StandardPrice,
		tickets.CategoryVIP:      event.VIPPrice,
	}

	lines := make([]linePlan, 0, len(tickets.Categories))
	for _, category := range tickets.Categories {
		qty := requested[category]
		if qty <= 0 {
			continue
		}
		lines = append(lines, linePlan{
			Category:  category,
			Quantity:  qty,
			UnitPrice: prices[category],
			Capacity:  category.DefaultCapacity(s.settings.StandardDefaultCapacity, s.settings.VIPDefaultCapacity),
		})
	}
	return lines
}

// insertBooking stores b, drawing a new reference whenever the current one
// is already taken
func (s *service) insertBooking(ctx context.Context, repo Repository, b *Booking) error {
	for attempt := 1; ; attempt++ {
		inserted, err := repo.CreateBooking(ctx, b)
		if err != nil {
			return storageFailure("insert booking", err)
		}
		if inserted {
			return nil
		}
		if attempt >= s.settings.ReferenceAttempts {
			return storageFailure("insert booking", ErrReferenceExhausted)
		}

		s.logger.FromContext(ctx).WarnContext(ctx, "Booking reference collision",
			slog.String("booking_reference", b.BookingReference),
			slog.Int("attempt", attempt),
		)
		ref, err := s.refs.New()
		if err != nil {
			return storageFailure("generate booking reference", err)
		}
		b.BookingReference = ref
	}
}

// afterCommit runs the side effects of a committed booking. None of them can
// fail the request.
func (s *service) afterCommit(ctx context.Context, log *logger.Logger, b *Booking, event *events.Event, req *CreateBookingRequest) {
	if s.listing != nil {
		if err := s.listing.InvalidateUpcoming(ctx); err != nil {
			log.WarnWithContext(ctx, "Failed to invalidate event listing cache", err, nil)
		}
	}

	msg := &notifications.BookingConfirmed{
		BookingID:        b.ID,
		BookingReference: b.BookingReference,
		PaymentStatus:    b.PaymentStatus.String(),
		TotalAmount:      b.TotalAmount,
		EventID:          event.ID,
		EventTitle:       event.Title,
		EventDate:        event.EventDate,
		CustomerID:       b.UserID,
		CustomerName:     b.FullName,
		CustomerEmail:    b.Email,
		StandardQty:      req.StandardQty.Int(),
		VIPQty:           req.VIPQty.Int(),
	}
	if err := s.publisher.PublishBookingConfirmed(ctx, msg); err != nil {
		log.WarnWithContext(ctx, "Failed to publish booking confirmation", err, map[string]interface{}{
			"booking_reference": b.BookingReference,
		})
	}
}

func (s *service) reportFailure(ctx context.Context, log *logger.Logger, be *BookingError, cause error) {
	if be.Kind == KindStorageFailure {
		if cause == nil {
			cause = be
		}
		log.ErrorWithContext(ctx, "Booking failed", cause, map[string]interface{}{"kind": string(be.Kind)})
		return
	}
	log.LogBookingRejected(ctx, string(be.Kind), be.Message)
}

func (s *service) validateRequest(req *CreateBookingRequest) *BookingError {
	if err := s.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
			return validationError("", "Invalid booking request")
		}

		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required", "notblank":
			return validationError(fe.Field(), "Missing required field: "+fe.Field())
		case "lte":
			return validationError(fe.Field(), fe.Field()+" cannot exceed "+fe.Param()+" tickets")
		default:
			return validationError(fe.Field(), fe.Field()+" must be a whole number of zero or more")
		}
	}

	if req.TotalQuantity() < 1 {
		return validationError("", "Please select at least one ticket")
	}
	return nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)

	// report fields by the names clients send
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
