package service

import (
	"context"
	"testing"

	"github.com/lakshaytakkar/team-portal/internal/calendar/internal/domain"
	"github.com/lakshaytakkar/team-portal/internal/pkg/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmployeeID = "99999999-8888-7777-6666-555555555555"

// fakeRepo 内存实现，日历的逻辑简单，不值得上 mock
type fakeRepo struct {
	events map[string]domain.Event
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: make(map[string]domain.Event)}
}

func (f *fakeRepo) Create(_ context.Context, e domain.Event) (string, error) {
	f.events[e.ID] = e
	return e.ID, nil
}

func (f *fakeRepo) Update(_ context.Context, e domain.Event) error {
	f.events[e.ID] = e
	return nil
}

func (f *fakeRepo) FindById(_ context.Context, id string) (domain.Event, error) {
	return f.events[id], nil
}

func (f *fakeRepo) FindByRange(_ context.Context, start, end int64) ([]domain.Event, error) {
	var res []domain.Event
	for _, e := range f.events {
		if e.StartTime < end && e.EndTime > start {
			res = append(res, e)
		}
	}
	return res, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	delete(f.events, id)
	return nil
}

type stubLookup struct{}

func (s *stubLookup) ByID(_ context.Context, id string) (string, error) {
	if id == testEmployeeID {
		return testEmployeeID, nil
	}
	return "", resolver.ErrRecordNotFound
}

func (s *stubLookup) ByKey(_ context.Context, _ resolver.Key, value string) (string, error) {
	if value == "王五" {
		return testEmployeeID, nil
	}
	return "", resolver.ErrRecordNotFound
}

func newTestService(repo *fakeRepo) EventService {
	return NewEventService(repo, resolver.New(&stubLookup{}, "name"))
}

func TestEventService_Save(t *testing.T) {
	t.Parallel()
	svc := newTestService(newFakeRepo())

	t.Run("组织者按姓名解析", func(t *testing.T) {
		id, err := svc.Save(context.Background(), domain.Event{
			Title:     "周会",
			StartTime: 1000,
			EndTime:   2000,
			Kind:      domain.KindMeeting,
		}, "王五")
		require.NoError(t, err)
		e, err := svc.Detail(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, testEmployeeID, e.OrganizerID)
	})

	t.Run("组织者可以为空", func(t *testing.T) {
		id, err := svc.Save(context.Background(), domain.Event{
			Title:     "国庆假期",
			StartTime: 5000,
			EndTime:   9000,
			AllDay:    true,
			Kind:      domain.KindHoliday,
		}, "")
		require.NoError(t, err)
		e, err := svc.Detail(context.Background(), id)
		require.NoError(t, err)
		assert.Empty(t, e.OrganizerID)
	})

	t.Run("结束不晚于开始-拒绝", func(t *testing.T) {
		_, err := svc.Save(context.Background(), domain.Event{
			Title:     "坏事件",
			StartTime: 2000,
			EndTime:   2000,
			Kind:      domain.KindOther,
		}, "")
		assert.ErrorIs(t, err, ErrInvalidEvent)
	})
}

func TestEventService_Range(t *testing.T) {
	t.Parallel()
	repo := newFakeRepo()
	svc := newTestService(repo)
	mk := func(title string, start, end int64) {
		_, err := svc.Save(context.Background(), domain.Event{
			Title:     title,
			StartTime: start,
			EndTime:   end,
			Kind:      domain.KindMeeting,
		}, "")
		require.NoError(t, err)
	}
	mk("完全在窗口内", 1100, 1200)
	mk("跨窗口开始", 900, 1100)
	mk("跨窗口结束", 1900, 2100)
	mk("在窗口之前", 500, 900)
	mk("在窗口之后", 2100, 2500)
	mk("恰好在窗口边界结束", 800, 1000)

	events, err := svc.Range(context.Background(), 1000, 2000)
	require.NoError(t, err)
	// 相交判定是严格不等，贴边不算
	assert.Len(t, events, 3)

	_, err = svc.Range(context.Background(), 2000, 1000)
	assert.ErrorIs(t, err, ErrInvalidRange)
}
