package queries

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"event-registration/internal/domain/event"
	"event-registration/internal/domain/registration"
	"event-registration/internal/pkg/errs"
)

var ErrInvalidStatusFilter = errs.New("invalid status filter")

// utf8BOM makes spreadsheet software open the export as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"受付番号", "イベント", "時間帯", "ステータス",
	"姓", "名", "セイ", "メイ",
	"メールアドレス", "電話番号", "所属", "人数", "同伴者",
	"申込日時", "キャンセル日時", "キャンセル理由",
}

const csvTimeLayout = "2006-01-02 15:04:05"

type RegistrationReadStore interface {
	OccupancyReader
	// List returns rows ordered by creation time; empty filter fields match everything.
	List(ctx context.Context, filter ListFilter) ([]RegistrationView, error)
}

type RegistrationQueries interface {
	List(ctx context.Context, filter ListFilter) (*ListResult, error)
	// ExportCSV writes nothing when the read fails, so callers can still send an error status.
	ExportCSV(ctx context.Context, eventKind string, w io.Writer) error
}

type registrationQueriesImpl struct {
	readStore RegistrationReadStore
	events    *event.Registry
	location  *time.Location
}

func NewRegistrationQueries(readStore RegistrationReadStore, events *event.Registry, location *time.Location) RegistrationQueries {
	if location == nil {
		location = time.UTC
	}
	return &registrationQueriesImpl{
		readStore: readStore,
		events:    events,
		location:  location,
	}
}

func (q *registrationQueriesImpl) List(ctx context.Context, filter ListFilter) (*ListResult, error) {
	normalized, err := q.normalizeFilter(filter)
	if err != nil {
		return nil, err
	}

	rows, err := q.readStore.List(ctx, normalized)
	if err != nil {
		return nil, err
	}

	result := &ListResult{
		TotalCount:   len(rows),
		Participants: rows,
	}
	for _, r := range rows {
		result.TotalSeats += r.Seats
	}
	return result, nil
}

func (q *registrationQueriesImpl) ExportCSV(ctx context.Context, eventKind string, w io.Writer) error {
	ev, err := q.events.Lookup(eventKind)
	if err != nil {
		return errs.Mark(err, ErrUnknownEvent)
	}

	rows, err := q.readStore.List(ctx, ListFilter{EventKind: string(ev.Kind)})
	if err != nil {
		return err
	}

	if _, err := w.Write(utf8BOM); err != nil {
		return errs.Wrap(err, "write csv bom")
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return errs.Wrap(err, "write csv header")
	}
	for _, r := range rows {
		if err := cw.Write(q.csvRecord(ev, r)); err != nil {
			return errs.Wrap(err, "write csv row")
		}
	}
	cw.Flush()
	return cw.Error()
}

func (q *registrationQueriesImpl) normalizeFilter(filter ListFilter) (ListFilter, error) {
	out := ListFilter{SlotLabel: strings.TrimSpace(filter.SlotLabel)}

	if raw := strings.TrimSpace(filter.EventKind); raw != "" {
		ev, err := q.events.Lookup(raw)
		if err != nil {
			return ListFilter{}, errs.Mark(err, ErrUnknownEvent)
		}
		out.EventKind = string(ev.Kind)
		if out.SlotLabel != "" {
			if _, err := ev.ResolveSlot(out.SlotLabel); err != nil {
				return ListFilter{}, errs.Mark(err, ErrInvalidSlot)
			}
		}
	}

	if raw := strings.TrimSpace(filter.Status); raw != "" {
		status, err := registration.ParseStatus(raw)
		if err != nil {
			return ListFilter{}, errs.Mark(err, ErrInvalidStatusFilter)
		}
		out.Status = string(status)
	}
	return out, nil
}

func (q *registrationQueriesImpl) csvRecord(ev event.Event, r RegistrationView) []string {
	members := make([]string, 0, len(r.GroupMembers))
	for _, m := range r.GroupMembers {
		if m.Kana != "" {
			members = append(members, m.Name+"("+m.Kana+")")
		} else {
			members = append(members, m.Name)
		}
	}

	cancelledAt := ""
	if r.CancelledAt != nil {
		cancelledAt = r.CancelledAt.In(q.location).Format(csvTimeLayout)
	}
	cancelReason := ""
	if r.CancelReason != nil {
		cancelReason = *r.CancelReason
	}

	return []string{
		r.ID,
		ev.Title,
		r.SlotLabel,
		r.Status,
		r.FamilyName,
		r.GivenName,
		r.FamilyNameKana,
		r.GivenNameKana,
		r.ContactEmail,
		r.Phone,
		r.Organization,
		strconv.Itoa(r.Seats),
		strings.Join(members, " / "),
		r.CreatedAt.In(q.location).Format(csvTimeLayout),
		cancelledAt,
		cancelReason,
	}
}
