package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"doctor-dashboard-api/internal/delivery/dto"
	"doctor-dashboard-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

// -- Mock repository --

type mockUnavailableDateRepo struct {
	dates map[uuid.UUID]*entity.UnavailableDate
}

func newMockUnavailableDateRepo() *mockUnavailableDateRepo {
	return &mockUnavailableDateRepo{dates: make(map[uuid.UUID]*entity.UnavailableDate)}
}

func (m *mockUnavailableDateRepo) Create(_ context.Context, date *entity.UnavailableDate) error {
	for _, d := range m.dates {
		if d.DoctorID == date.DoctorID && d.Date.Equal(date.Date) {
			return &pgconn.PgError{
				Code:           "23505",
				ConstraintName: "idx_unavailable_dates_doctor_date",
			}
		}
	}
	date.ID = uuid.New()
	date.CreatedAt = time.Now()
	m.dates[date.ID] = date
	return nil
}

func (m *mockUnavailableDateRepo) FindByDoctorID(_ context.Context, doctorID uuid.UUID) ([]entity.UnavailableDate, error) {
	var result []entity.UnavailableDate
	for _, d := range m.dates {
		if d.DoctorID == doctorID {
			result = append(result, *d)
		}
	}
	// ascending by date, as the real repository orders
	for i := 0; i < len(result); i++ {
		for j := i + 1; j < len(result); j++ {
			if result[j].Date.Before(result[i].Date) {
				result[i], result[j] = result[j], result[i]
			}
		}
	}
	return result, nil
}

func (m *mockUnavailableDateRepo) DeleteByIDAndDoctorID(_ context.Context, id, doctorID uuid.UUID) (int64, error) {
	d, ok := m.dates[id]
	if !ok || d.DoctorID != doctorID {
		return 0, nil
	}
	delete(m.dates, id)
	return 1, nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestAvailabilityUsecase(repo *mockUnavailableDateRepo, now time.Time) *availabilityUsecase {
	u := NewAvailabilityUsecase(testLogger(), repo).(*availabilityUsecase)
	u.now = func() time.Time { return now }
	return u
}

// -- Tests --

func TestAddUnavailableDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	doctorID := uuid.New()

	t.Run("creates a future date once", func(t *testing.T) {
		repo := newMockUnavailableDateRepo()
		u := newTestAvailabilityUsecase(repo, now)

		resp, err := u.AddUnavailableDate(context.Background(), doctorID, &dto.AddUnavailableDateRequest{
			Date:   "2026-04-01",
			Reason: "Vacation",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ID == uuid.Nil {
			t.Error("expected a generated id")
		}
		if resp.Date != "2026-04-01" {
			t.Errorf("date = %q, want 2026-04-01", resp.Date)
		}
		if resp.Reason != "Vacation" {
			t.Errorf("reason = %q, want Vacation", resp.Reason)
		}
	})

	t.Run("accepts today", func(t *testing.T) {
		repo := newMockUnavailableDateRepo()
		u := newTestAvailabilityUsecase(repo, now)

		_, err := u.AddUnavailableDate(context.Background(), doctorID, &dto.AddUnavailableDateRequest{
			Date:   "2026-03-15",
			Reason: "Conference",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects past dates regardless of reason", func(t *testing.T) {
		repo := newMockUnavailableDateRepo()
		u := newTestAvailabilityUsecase(repo, now)

		for _, reason := range []string{"Vacation", "Sick leave", "x"} {
			_, err := u.AddUnavailableDate(context.Background(), doctorID, &dto.AddUnavailableDateRequest{
				Date:   "2026-03-14",
				Reason: reason,
			})
			if err != ErrPastDate {
				t.Errorf("reason %q: err = %v, want ErrPastDate", reason, err)
			}
		}
		if len(repo.dates) != 0 {
			t.Errorf("expected no records persisted, got %d", len(repo.dates))
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		repo := newMockUnavailableDateRepo()
		u := newTestAvailabilityUsecase(repo, now)

		_, err := u.AddUnavailableDate(context.Background(), doctorID, &dto.AddUnavailableDateRequest{
			Date:   "01/04/2026",
			Reason: "Vacation",
		})
		if err != ErrInvalidDateFormat {
			t.Errorf("err = %v, want ErrInvalidDateFormat", err)
		}
	})

	t.Run("second add for the same date fails with duplicate", func(t *testing.T) {
		repo := newMockUnavailableDateRepo()
		u := newTestAvailabilityUsecase(repo, now)

		req := &dto.AddUnavailableDateRequest{Date: "2026-05-10", Reason: "Vacation"}
		if _, err := u.AddUnavailableDate(context.Background(), doctorID, req); err != nil {
			t.Fatalf("first add failed: %v", err)
		}
		_, err := u.AddUnavailableDate(context.Background(), doctorID, &dto.AddUnavailableDateRequest{
			Date:   "2026-05-10",
			Reason: "Another reason",
		})
		if err != ErrDuplicateDate {
			t.Errorf("err = %v, want ErrDuplicateDate", err)
		}
		if len(repo.dates) != 1 {
			t.Errorf("expected exactly one record, got %d", len(repo.dates))
		}
	})

	t.Run("same date for another doctor is allowed", func(t *testing.T) {
		repo := newMockUnavailableDateRepo()
		u := newTestAvailabilityUsecase(repo, now)

		req := &dto.AddUnavailableDateRequest{Date: "2026-05-10", Reason: "Vacation"}
		if _, err := u.AddUnavailableDate(context.Background(), doctorID, req); err != nil {
			t.Fatalf("first add failed: %v", err)
		}
		if _, err := u.AddUnavailableDate(context.Background(), uuid.New(), req); err != nil {
			t.Errorf("second doctor add failed: %v", err)
		}
	})
}

func TestListUnavailableDates(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	doctorID := uuid.New()
	repo := newMockUnavailableDateRepo()
	u := newTestAvailabilityUsecase(repo, now)

	for _, d := range []string{"2026-06-20", "2026-04-01", "2026-05-10"} {
		if _, err := u.AddUnavailableDate(context.Background(), doctorID, &dto.AddUnavailableDateRequest{Date: d, Reason: "Blocked"}); err != nil {
			t.Fatalf("add %s failed: %v", d, err)
		}
	}

	resp, err := u.ListUnavailableDates(context.Background(), doctorID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Total != 3 {
		t.Fatalf("total = %d, want 3", resp.Total)
	}
	want := []string{"2026-04-01", "2026-05-10", "2026-06-20"}
	for i, w := range want {
		if resp.Dates[i].Date != w {
			t.Errorf("dates[%d] = %q, want %q", i, resp.Dates[i].Date, w)
		}
	}
}

func TestRemoveUnavailableDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	doctorID := uuid.New()

	t.Run("removed id disappears from the list", func(t *testing.T) {
		repo := newMockUnavailableDateRepo()
		u := newTestAvailabilityUsecase(repo, now)

		created, err := u.AddUnavailableDate(context.Background(), doctorID, &dto.AddUnavailableDateRequest{Date: "2026-04-01", Reason: "Vacation"})
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}

		if err := u.RemoveUnavailableDate(context.Background(), doctorID, created.ID); err != nil {
			t.Fatalf("remove failed: %v", err)
		}

		resp, err := u.ListUnavailableDates(context.Background(), doctorID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		for _, d := range resp.Dates {
			if d.ID == created.ID {
				t.Error("removed id still present in list")
			}
		}
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		repo := newMockUnavailableDateRepo()
		u := newTestAvailabilityUsecase(repo, now)

		err := u.RemoveUnavailableDate(context.Background(), doctorID, uuid.New())
		if err != ErrUnavailableDateNotFound {
			t.Errorf("err = %v, want ErrUnavailableDateNotFound", err)
		}
	})

	t.Run("another doctor's record is not removable", func(t *testing.T) {
		repo := newMockUnavailableDateRepo()
		u := newTestAvailabilityUsecase(repo, now)

		created, err := u.AddUnavailableDate(context.Background(), doctorID, &dto.AddUnavailableDateRequest{Date: "2026-04-01", Reason: "Vacation"})
		if err != nil {
			t.Fatalf("add failed: %v", err)
		}

		err = u.RemoveUnavailableDate(context.Background(), uuid.New(), created.ID)
		if err != ErrUnavailableDateNotFound {
			t.Errorf("err = %v, want ErrUnavailableDateNotFound", err)
		}
	})
}
