// file: internals/features/study/bookings/dto/booking_dto.go
package dto

type CreateBookingRequest struct {
	BookingSessionID string `json:"booking_session_id" validate:"required"`
}
