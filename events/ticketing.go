package events

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"fanhub/db"
	"fanhub/models"
	"fanhub/resolve"
	"fanhub/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// TicketQR answers GET /api/events/event/:slug/ticket-qr with a PNG QR
// code for the event's ticket link.
func TicketQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var event models.Event
	if err := db.EventsCollection.FindOne(r.Context(), bson.M{"slug": ps.ByName("slug")}).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if !event.TicketInfo.Available || event.TicketInfo.TicketLink == "" {
		utils.RespondWithError(w, http.StatusNotFound, "No tickets available for this event")
		return
	}

	png, err := qrcode.Encode(event.TicketInfo.TicketLink, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// LineupPDF answers GET /api/events/event/:slug/lineup with a printable
// one-page lineup sheet.
func LineupPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx := r.Context()

	var event models.Event
	if err := db.EventsCollection.FindOne(ctx, bson.M{"slug": ps.ByName("slug")}).Decode(&event); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Event not found")
		return
	}
	if err := resolve.New().Event(ctx, &event, 1); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Error resolving event")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.CellFormat(0, 15, event.Title, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Arial", "", 12)
	when := event.EventDate.Format("02 Jan 2006 15:04")
	if event.EndDate != nil {
		when += " - " + event.EndDate.Format("02 Jan 2006 15:04")
	}
	venue := event.Location.Venue
	if event.Location.City != "" {
		venue += ", " + event.Location.City
	}
	pdf.MultiCell(0, 8, fmt.Sprintf("Date: %s\nVenue: %s\nStatus: %s", when, venue, event.Status), "", "L", false)
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, "Lineup", "B", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for i, artist := range event.Artists.Docs() {
		name := artist.Name
		if artist.StageName != "" {
			name = fmt.Sprintf("%s (%s)", artist.StageName, artist.Name)
		}
		pdf.CellFormat(0, 8, fmt.Sprintf("%d. %s", i+1, name), "", 1, "L", false, 0, "")
	}
	if len(event.Artists.Docs()) == 0 {
		pdf.CellFormat(0, 8, "Lineup to be announced", "", 1, "L", false, 0, "")
	}

	if event.TicketInfo.Available && event.TicketInfo.TicketLink != "" {
		qrPNG, err := qrcode.Encode(event.TicketInfo.TicketLink, qrcode.Medium, 128)
		if err == nil {
			pdf.Ln(8)
			pdf.SetFont("Arial", "B", 12)
			pdf.CellFormat(0, 8, "Tickets", "", 1, "L", false, 0, "")
			opts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("ticket-qr", opts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("ticket-qr", 20, pdf.GetY(), 40, 40, false, opts, 0, "")
		}
	}

	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(0, 8, "Generated "+time.Now().Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%s-lineup.pdf", event.Slug))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
