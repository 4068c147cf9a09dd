package worker_test

import (
	"testing"
	"time"

	"tailorshop/internal/core/domain/model/kernel"
	"tailorshop/internal/core/domain/model/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWorkerDetails(t *testing.T) worker.Details {
	t.Helper()
	rate, err := kernel.MoneyFromString("150")
	require.NoError(t, err)

	return worker.Details{
		Name:        "Jamal Hossain",
		Phone:       "01898765432",
		Address:     "4 Station Road",
		WorkType:    worker.WorkTypeSewing,
		RatePerWork: rate,
		RateType:    worker.RatePerPiece,
		JoinDate:    time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestWorker(t *testing.T) *worker.Worker {
	t.Helper()
	w, err := worker.NewWorker(kernel.NewUUID(), validWorkerDetails(t))
	require.NoError(t, err)
	return w
}

func TestNewWorker(t *testing.T) {
	t.Run("should create active worker with zeroed totals", func(t *testing.T) {
		w := newTestWorker(t)

		require.NoError(t, w.Validate())
		assert.True(t, w.IsActive())
		assert.Equal(t, 0, w.TotalWork())
		assert.True(t, w.TotalSalary().IsZero())
		assert.True(t, w.AdvancePaid().IsZero())
		assert.True(t, w.DueAmount().IsZero())
		assert.Nil(t, w.LastPaymentDate())
		assert.Equal(t, 1, w.Version())
	})

	t.Run("should fail when name is missing", func(t *testing.T) {
		details := validWorkerDetails(t)
		details.Name = ""

		_, err := worker.NewWorker(kernel.NewUUID(), details)

		require.ErrorIs(t, err, worker.ErrNameIsRequired)
	})

	t.Run("should fail when phone is missing", func(t *testing.T) {
		details := validWorkerDetails(t)
		details.Phone = ""

		_, err := worker.NewWorker(kernel.NewUUID(), details)

		require.ErrorIs(t, err, worker.ErrPhoneIsRequired)
	})

	t.Run("should fail with invalid work type", func(t *testing.T) {
		details := validWorkerDetails(t)
		details.WorkType = worker.WorkTypeUnknown

		_, err := worker.NewWorker(kernel.NewUUID(), details)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "workType")
	})

	t.Run("should fail with invalid rate type", func(t *testing.T) {
		details := validWorkerDetails(t)
		details.RateType = worker.RateTypeUnknown

		_, err := worker.NewWorker(kernel.NewUUID(), details)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rateType")
	})
}

func TestWorker_RecordWork(t *testing.T) {
	t.Run("should accrue work and salary at the configured rate", func(t *testing.T) {
		w := newTestWorker(t)

		require.NoError(t, w.RecordWork(4))

		assert.Equal(t, 4, w.TotalWork())
		assert.Equal(t, "600", w.TotalSalary().String())
		assert.Equal(t, "600", w.DueAmount().String())
	})

	t.Run("should accumulate across calls", func(t *testing.T) {
		w := newTestWorker(t)

		require.NoError(t, w.RecordWork(2))
		require.NoError(t, w.RecordWork(3))

		assert.Equal(t, 5, w.TotalWork())
		assert.Equal(t, "750", w.TotalSalary().String())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		w := newTestWorker(t)

		require.Error(t, w.RecordWork(0))
		require.Error(t, w.RecordWork(-2))
		assert.Equal(t, 0, w.TotalWork())
	})
}

func TestWorker_RecordPayment(t *testing.T) {
	t.Run("should raise advance and track payment date", func(t *testing.T) {
		w := newTestWorker(t)
		require.NoError(t, w.RecordWork(4))
		amount, _ := kernel.MoneyFromString("200")
		paidAt := time.Date(2025, 11, 5, 12, 0, 0, 0, time.UTC)

		require.NoError(t, w.RecordPayment(amount, paidAt))

		assert.Equal(t, "200", w.AdvancePaid().String())
		assert.Equal(t, "400", w.DueAmount().String())
		require.NotNil(t, w.LastPaymentDate())
		assert.Equal(t, paidAt, *w.LastPaymentDate())
	})

	t.Run("should allow advance beyond earned salary", func(t *testing.T) {
		w := newTestWorker(t)
		amount, _ := kernel.MoneyFromString("500")

		require.NoError(t, w.RecordPayment(amount, time.Now()))

		assert.Equal(t, "-500", w.DueAmount().String())
	})

	t.Run("should reject zero amount", func(t *testing.T) {
		w := newTestWorker(t)

		err := w.RecordPayment(kernel.ZeroMoney(), time.Now())

		require.ErrorIs(t, err, worker.ErrWorkerPaymentAmountIsInvalid)
	})
}

func TestWorker_Activation(t *testing.T) {
	w := newTestWorker(t)

	w.Deactivate()
	assert.False(t, w.IsActive())

	w.Activate()
	assert.True(t, w.IsActive())
}

func TestRestoreWorker(t *testing.T) {
	t.Run("should rehydrate persisted state", func(t *testing.T) {
		src := newTestWorker(t)
		require.NoError(t, src.RecordWork(10))
		amount, _ := kernel.MoneyFromString("800")
		require.NoError(t, src.RecordPayment(amount, time.Now()))

		restored, err := worker.RestoreWorker(
			src.ID(), src.Details(), src.TotalWork(), src.TotalSalary(),
			src.AdvancePaid(), src.LastPaymentDate(), false, 7,
		)

		require.NoError(t, err)
		assert.Equal(t, 10, restored.TotalWork())
		assert.Equal(t, "1500", restored.TotalSalary().String())
		assert.Equal(t, "700", restored.DueAmount().String())
		assert.False(t, restored.IsActive())
		assert.Equal(t, 7, restored.Version())
	})

	t.Run("should reject negative total work", func(t *testing.T) {
		src := newTestWorker(t)

		_, err := worker.RestoreWorker(
			src.ID(), src.Details(), -1, src.TotalSalary(),
			src.AdvancePaid(), nil, true, 1,
		)

		require.Error(t, err)
	})
}

func TestWorkTypeAndRateType(t *testing.T) {
	t.Run("work type round-trips through string", func(t *testing.T) {
		for _, name := range []string{"Cutting", "Sewing", "Embroidery", "Finishing", "Other"} {
			wt, err := worker.WorkTypeFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, wt.String())
		}
	})

	t.Run("rate type round-trips through string", func(t *testing.T) {
		for _, name := range []string{"per_piece", "per_hour", "per_day", "monthly"} {
			rt, err := worker.RateTypeFromString(name)
			require.NoError(t, err)
			assert.Equal(t, name, rt.String())
		}
	})

	t.Run("unrecognized values are rejected", func(t *testing.T) {
		_, err := worker.WorkTypeFromString("Welding")
		require.Error(t, err)

		_, err = worker.RateTypeFromString("per_week")
		require.Error(t, err)
	})
}
