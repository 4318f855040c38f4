package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/mindrep/internal/engine"
	errorvalues "github.com/limbo/mindrep/internal/error_values"
	"github.com/limbo/mindrep/internal/repository/mocks"
	"github.com/limbo/mindrep/internal/service"
	servicemocks "github.com/limbo/mindrep/internal/service/mocks"
	"github.com/limbo/mindrep/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type prescriptionDeps struct {
	prescriptions *mocks.MockPrescriptionsRepositoryI
	checkins      *mocks.MockMoodCheckinsRepositoryI
	sessions      *mocks.MockExerciseSessionsRepositoryI
	correlations  *servicemocks.MockCorrelationServiceI
}

func newPrescriptionService(t *testing.T) (*service.PrescriptionService, prescriptionDeps) {
	ctrl := gomock.NewController(t)
	deps := prescriptionDeps{
		prescriptions: mocks.NewMockPrescriptionsRepositoryI(ctrl),
		checkins:      mocks.NewMockMoodCheckinsRepositoryI(ctrl),
		sessions:      mocks.NewMockExerciseSessionsRepositoryI(ctrl),
		correlations:  servicemocks.NewMockCorrelationServiceI(ctrl),
	}
	table, err := engine.NewRuleTable(engine.DefaultRules())
	require.NoError(t, err)
	ps := service.NewPrescriptionService(deps.prescriptions, deps.checkins, deps.sessions, deps.correlations, engine.NewSelector(table))
	return ps, deps
}

func expectNoPrescriptionToday(deps prescriptionDeps) {
	deps.prescriptions.EXPECT().GetForPeriod(gomock.Any(), userID, today(), today().AddDate(0, 0, 1)).
		Return(nil, errorvalues.ErrPrescriptionNotFound)
}

func expectCreatePrescription(deps prescriptionDeps, id uuid.UUID) {
	deps.prescriptions.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, p *entity.Prescription) error {
		p.ID = id
		return nil
	})
}

func TestTodayReturnsExisting(t *testing.T) {
	ps, deps := newPrescriptionService(t)
	existing := &entity.Prescription{ID: uuid.New(), UserID: userID, ExerciseType: "yoga", Source: entity.SourceRuleBased}
	deps.prescriptions.EXPECT().GetForPeriod(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(existing, nil)
	p, err := ps.Today(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, existing, p)
}

func TestTodayWithoutCheckins(t *testing.T) {
	ps, deps := newPrescriptionService(t)
	id := uuid.New()
	expectNoPrescriptionToday(deps)
	deps.checkins.EXPECT().Latest(gomock.Any(), userID).Return(nil, nil)
	deps.correlations.EXPECT().Current(gomock.Any(), gomock.Any()).Times(0)
	deps.sessions.EXPECT().ListSince(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	expectCreatePrescription(deps, id)
	p, err := ps.Today(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, entity.SourceRuleBased, p.Source)
	assert.Equal(t, "walking", p.ExerciseType)
	assert.Equal(t, 20, p.SuggestedDurationMinutes)
	assert.Equal(t, entity.IntensityModerate, p.SuggestedIntensity)
	assert.Equal(t, engine.RuleBasedConfidence, p.Confidence)
}

func TestTodayRuleBased(t *testing.T) {
	ps, deps := newPrescriptionService(t)
	id := uuid.New()
	latest := &entity.MoodCheckin{ID: uuid.New(), UserID: userID, MoodScore: 5, ManualTags: []string{"anxious"}, CreatedAt: time.Now()}
	expectNoPrescriptionToday(deps)
	deps.checkins.EXPECT().Latest(gomock.Any(), userID).Return(latest, nil)
	deps.correlations.EXPECT().Current(gomock.Any(), userID).Return([]entity.Correlation{}, nil)
	deps.sessions.EXPECT().ListSince(gomock.Any(), userID, today().AddDate(0, 0, -service.HistoryDays)).Return(nil, nil)
	expectCreatePrescription(deps, id)
	p, err := ps.Today(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, id, p.ID)
	assert.Equal(t, userID, p.UserID)
	assert.Equal(t, entity.SourceRuleBased, p.Source)
	assert.Equal(t, "walking", p.ExerciseType)
	assert.Equal(t, 25, p.SuggestedDurationMinutes)
	assert.Equal(t, entity.IntensityModerate, p.SuggestedIntensity)
	assert.Equal(t, engine.RuleBasedConfidence, p.Confidence)
	assert.NotEmpty(t, p.Reasoning)
}

func TestTodayFromCorrelation(t *testing.T) {
	ps, deps := newPrescriptionService(t)
	latest := &entity.MoodCheckin{UserID: userID, MoodScore: 4, CreatedAt: time.Now()}
	correlations := []entity.Correlation{
		{UserID: userID, ExerciseType: "running", MoodChangeAvg: 2.5, MoodChangePct: 50, PValue: 0.01, EffectPValue: 0.01, SampleSize: 10, LagDays: 1},
		{UserID: userID, ExerciseType: "yoga", MoodChangeAvg: 3, PValue: 0.3, EffectPValue: 0.3, SampleSize: 10, LagDays: 1},
	}
	sessions := []entity.ExerciseSession{
		{UserID: userID, Date: today().AddDate(0, 0, -3), ExerciseType: "running", DurationMinutes: 45, Intensity: entity.IntensityVigorous},
		{UserID: userID, Date: today().AddDate(0, 0, -5), ExerciseType: "running", DurationMinutes: 45, Intensity: entity.IntensityVigorous},
		{UserID: userID, Date: today().AddDate(0, 0, -6), ExerciseType: "yoga", DurationMinutes: 20, Intensity: entity.IntensityLow},
	}
	expectNoPrescriptionToday(deps)
	deps.checkins.EXPECT().Latest(gomock.Any(), userID).Return(latest, nil)
	deps.correlations.EXPECT().Current(gomock.Any(), userID).Return(correlations, nil)
	deps.sessions.EXPECT().ListSince(gomock.Any(), userID, gomock.Any()).Return(sessions, nil)
	expectCreatePrescription(deps, uuid.New())
	p, err := ps.Today(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, entity.SourceCorrelation, p.Source)
	assert.Equal(t, "running", p.ExerciseType)
	assert.Equal(t, 45, p.SuggestedDurationMinutes)
	assert.Equal(t, entity.IntensityVigorous, p.SuggestedIntensity)
	assert.InDelta(t, 0.495, p.Confidence, 1e-9)
	assert.Contains(t, p.Reasoning, "Running")
}

func TestTodaySharesConcurrentRuns(t *testing.T) {
	ps, deps := newPrescriptionService(t)
	release := make(chan struct{})
	deps.prescriptions.EXPECT().GetForPeriod(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid uuid.UUID, from, to time.Time) (*entity.Prescription, error) {
			<-release
			return nil, errorvalues.ErrPrescriptionNotFound
		}).MinTimes(1).MaxTimes(2)
	deps.checkins.EXPECT().Latest(gomock.Any(), userID).Return(&entity.MoodCheckin{UserID: userID, MoodScore: 6}, nil).MinTimes(1).MaxTimes(2)
	deps.correlations.EXPECT().Current(gomock.Any(), userID).Return(nil, nil).MinTimes(1).MaxTimes(2)
	deps.sessions.EXPECT().ListSince(gomock.Any(), userID, gomock.Any()).Return(nil, nil).MinTimes(1).MaxTimes(2)
	deps.prescriptions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).MinTimes(1).MaxTimes(2)

	var wg sync.WaitGroup
	results := make([]*entity.Prescription, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := ps.Today(context.Background(), userID)
			assert.NoError(t, err)
			results[i] = p
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	require.NotNil(t, results[0])
	require.NotNil(t, results[1])
	assert.Equal(t, results[0].ExerciseType, results[1].ExerciseType)
}

func TestTodaySurvivesCancelledFirstCaller(t *testing.T) {
	ps, deps := newPrescriptionService(t)
	started := make(chan struct{})
	release := make(chan struct{})
	deps.prescriptions.EXPECT().GetForPeriod(gomock.Any(), userID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, uid uuid.UUID, from, to time.Time) (*entity.Prescription, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			return &entity.Prescription{ID: uuid.New(), UserID: uid, ExerciseType: "yoga"}, nil
		})

	firstCtx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := ps.Today(firstCtx, userID)
		firstErr <- err
	}()
	<-started

	secondRes := make(chan *entity.Prescription, 1)
	go func() {
		p, err := ps.Today(context.Background(), userID)
		assert.NoError(t, err)
		secondRes <- p
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)
	close(release)

	p := <-secondRes
	require.NotNil(t, p)
	assert.Equal(t, "yoga", p.ExerciseType)
}

func TestTodayErrors(t *testing.T) {
	ctx := context.Background()
	latest := &entity.MoodCheckin{UserID: userID, MoodScore: 5}
	t.Run("lookup of today", func(t *testing.T) {
		ps, deps := newPrescriptionService(t)
		deps.prescriptions.EXPECT().GetForPeriod(gomock.Any(), userID, gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
		_, err := ps.Today(ctx, userID)
		assert.Error(t, err)
	})
	t.Run("latest check-in", func(t *testing.T) {
		ps, deps := newPrescriptionService(t)
		expectNoPrescriptionToday(deps)
		deps.checkins.EXPECT().Latest(gomock.Any(), userID).Return(nil, errors.New("db error"))
		_, err := ps.Today(ctx, userID)
		assert.Error(t, err)
	})
	t.Run("correlations are not stored over", func(t *testing.T) {
		ps, deps := newPrescriptionService(t)
		expectNoPrescriptionToday(deps)
		deps.checkins.EXPECT().Latest(gomock.Any(), userID).Return(latest, nil)
		deps.correlations.EXPECT().Current(gomock.Any(), userID).Return(nil, errors.New("db error"))
		deps.sessions.EXPECT().ListSince(gomock.Any(), userID, gomock.Any()).Return(nil, nil).AnyTimes()
		_, err := ps.Today(ctx, userID)
		assert.Error(t, err)
	})
	t.Run("user removed meanwhile", func(t *testing.T) {
		ps, deps := newPrescriptionService(t)
		expectNoPrescriptionToday(deps)
		deps.checkins.EXPECT().Latest(gomock.Any(), userID).Return(latest, nil)
		deps.correlations.EXPECT().Current(gomock.Any(), userID).Return(nil, nil)
		deps.sessions.EXPECT().ListSince(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
		deps.prescriptions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserNotFound)
		_, err := ps.Today(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestRecordFeedback(t *testing.T) {
	ps, deps := newPrescriptionService(t)
	ctx := context.Background()
	id := uuid.New()
	t.Run("recorded", func(t *testing.T) {
		deps.prescriptions.EXPECT().RecordFeedback(gomock.Any(), id, userID, true, ptr(8)).Return(nil)
		err := ps.RecordFeedback(ctx, id, userID, service.FeedbackRequest{WasFollowed: ptr(true), FollowUpMoodScore: ptr(8)})
		assert.NoError(t, err)
	})
	t.Run("skipped without score", func(t *testing.T) {
		deps.prescriptions.EXPECT().RecordFeedback(gomock.Any(), id, userID, false, gomock.Nil()).Return(nil)
		err := ps.RecordFeedback(ctx, id, userID, service.FeedbackRequest{WasFollowed: ptr(false)})
		assert.NoError(t, err)
	})
	t.Run("invalid", func(t *testing.T) {
		err := ps.RecordFeedback(ctx, id, userID, service.FeedbackRequest{})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		err = ps.RecordFeedback(ctx, id, userID, service.FeedbackRequest{WasFollowed: ptr(true), FollowUpMoodScore: ptr(11)})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	for _, sentinel := range []error{errorvalues.ErrPrescriptionNotFound, errorvalues.ErrWrongOwner, errorvalues.ErrFeedbackRecorded} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			deps.prescriptions.EXPECT().RecordFeedback(gomock.Any(), id, userID, true, gomock.Any()).Return(sentinel)
			err := ps.RecordFeedback(ctx, id, userID, service.FeedbackRequest{WasFollowed: ptr(true)})
			assert.ErrorIs(t, err, sentinel)
		})
	}
	t.Run("repository error", func(t *testing.T) {
		deps.prescriptions.EXPECT().RecordFeedback(gomock.Any(), id, userID, true, gomock.Any()).Return(errors.New("db error"))
		err := ps.RecordFeedback(ctx, id, userID, service.FeedbackRequest{WasFollowed: ptr(true)})
		assert.Error(t, err)
	})
}

func TestGetUserPrescriptions(t *testing.T) {
	ps, deps := newPrescriptionService(t)
	list := []entity.Prescription{{ID: uuid.New(), UserID: userID, ExerciseType: "walking"}}
	deps.prescriptions.EXPECT().GetByUserID(gomock.Any(), userID, 10, 0).Return(list, nil)
	res, err := ps.GetUserPrescriptions(context.Background(), userID, service.PaginationOpts{Limit: 10})
	assert.NoError(t, err)
	assert.Equal(t, list, res)
}
