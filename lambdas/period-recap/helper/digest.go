package helper

import (
	"bytes"
	"fmt"
	"strings"

	attendance "github.com/snnnxs25024-ux/absensi-backend/attendance/core"
	"github.com/snnnxs25024-ux/absensi-backend/attendance/model"
	"github.com/xuri/excelize/v2"
)

// SiteRecap is one site's finished half-month rollup.
type SiteRecap struct {
	Site           string
	Period         attendance.Period
	Sessions       int
	Gap            int
	FullFill       int
	FullFillBuffer int
	Tallies        []attendance.AttendanceTally
}

// BuildRecap classifies every session in the period and tallies attendance
// days, the same numbers the report endpoints serve.
func BuildRecap(site string, period attendance.Period, sessions []model.AttendanceSession, workers []model.Worker) SiteRecap {
	recap := SiteRecap{
		Site:     site,
		Period:   period,
		Sessions: len(sessions),
		Tallies:  attendance.CountAttendanceDays(sessions, workers, period),
	}

	for _, s := range sessions {
		switch attendance.Fulfillment(s.PlanMpp, attendance.ActualCount(s.Records)) {
		case attendance.FulfillmentGap:
			recap.Gap++
		case attendance.FulfillmentFull:
			recap.FullFill++
		default:
			recap.FullFillBuffer++
		}
	}

	return recap
}

func (r SiteRecap) Subject() string {
	return fmt.Sprintf("Attendance recap %s (%s)", r.Site, r.Period.Label())
}

// SlackLine is the one-line summary posted to the info channel.
func (r SiteRecap) SlackLine() string {
	return fmt.Sprintf("%s %s: %d sessions (%d gap / %d full / %d buffer), %d workers attended",
		r.Site, r.Period.Label(), r.Sessions, r.Gap, r.FullFill, r.FullFillBuffer, len(r.Tallies))
}

func (r SiteRecap) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Attendance recap for %s, %s\n\n", r.Site, r.Period.Label())
	fmt.Fprintf(&b, "Sessions: %d (GAP %d, FULL FILL %d, FULL FILL BUFFER %d)\n\n", r.Sessions, r.Gap, r.FullFill, r.FullFillBuffer)
	for _, t := range r.Tallies {
		fmt.Fprintf(&b, "%-12s %-30s %d\n", t.OpsID, t.FullName, t.Days)
	}
	return b.String()
}

func (r SiteRecap) HTML() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<h2>Attendance recap for %s</h2>", r.Site)
	fmt.Fprintf(&b, "<p>%s</p>", r.Period.Label())
	fmt.Fprintf(&b, "<p>Sessions: %d &mdash; GAP %d, FULL FILL %d, FULL FILL BUFFER %d</p>", r.Sessions, r.Gap, r.FullFill, r.FullFillBuffer)
	b.WriteString("<table border=\"1\" cellpadding=\"4\"><tr><th>Ops ID</th><th>Full Name</th><th>Days</th></tr>")
	for _, t := range r.Tallies {
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td><td>%d</td></tr>", t.OpsID, t.FullName, t.Days)
	}
	b.WriteString("</table>")
	return b.String()
}

// TallyAttachment renders the tallies as a workbook the site admins can
// file, same layout as the report export.
func (r SiteRecap) TallyAttachment() (Attachment, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Attendance Days"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return Attachment{}, err
	}

	headers := []interface{}{"Ops ID", "Full Name", "Attendance Days"}
	f.SetSheetRow(sheet, "A1", &headers)
	for i, t := range r.Tallies {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{t.OpsID, t.FullName, t.Days}
		f.SetSheetRow(sheet, cell, &row)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return Attachment{}, err
	}

	return Attachment{
		Filename:    fmt.Sprintf("attendance-days-%s-%s.xlsx", r.Site, r.Period.Start.Format("20060102")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     buf.Bytes(),
	}, nil
}
