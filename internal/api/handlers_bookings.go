package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"sharemart/internal/models"
)

type createBookingRequest struct {
	ItemID int64  `json:"itemId"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	bookerID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+userIDHeader+" header")
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	start, err := time.Parse(time.RFC3339, req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start: expected RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, req.End)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end: expected RFC3339")
		return
	}

	booking, err := s.bookings.CreateBooking(r.Context(), req.ItemID, start, end, bookerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBookingResponse(booking))
}

func (s *Server) handleApproveBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+userIDHeader+" header")
		return
	}
	bookingID, ok := pathID(r, "bookingId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	approved, err := strconv.ParseBool(r.URL.Query().Get("approved"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "approved query parameter is required")
		return
	}

	booking, err := s.bookings.ApproveBooking(r.Context(), bookingID, approved, userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (s *Server) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+userIDHeader+" header")
		return
	}
	bookingID, ok := pathID(r, "bookingId")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	booking, err := s.bookings.FindBooking(r.Context(), bookingID, userID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingResponse(booking))
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	s.listBookings(w, r, models.RoleBooker)
}

func (s *Server) handleListOwnerBookings(w http.ResponseWriter, r *http.Request) {
	s.listBookings(w, r, models.RoleOwner)
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request, role string) {
	userID, ok := callerID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "missing or invalid "+userIDHeader+" header")
		return
	}
	from, size, err := s.pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	state := r.URL.Query().Get("state")
	if state == "" {
		state = models.StateAll
	}

	bookings, err := s.bookings.ListByState(r.Context(), userID, role, state, from, size)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBookingList(bookings))
}
