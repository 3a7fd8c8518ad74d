package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"payrates/internal/model"
	"payrates/internal/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// generatedStore returns the retail fixture with award 1 rules generated at 2025-01-01 and 2025-07-01.
func generatedStore(t *testing.T) *memStore {
	t.Helper()
	store := retailStore()
	builder := newRuleBuilder(store, &fakeLocker{}, &fakePublisher{}, buildNow)
	for _, from := range []string{"2025-01-01", "2025-07-01"} {
		_, err := builder.GeneratePayRulesForAward(context.Background(), 1, datePtr(from), "")
		require.NoError(t, err)
	}

	// the database preloads these associations
	for i := range store.rules {
		r := &store.rules[i]
		for j := range store.classifications {
			if store.classifications[j].ID == r.ClassificationID {
				r.Classification = &store.classifications[j]
			}
		}
		for j := range store.penalties {
			if r.PenaltyRateID != nil && store.penalties[j].ID == *r.PenaltyRateID {
				r.PenaltyRate = &store.penalties[j]
			}
		}
		r.Award = &store.awards[0]
		r.EmploymentType = &store.employmentTypes[0]
	}
	return store
}

func TestListRules(t *testing.T) {
	store := generatedStore(t)
	svc := NewPayRuleService(ruleStore{store}, fixedClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)})

	rules, total, err := svc.ListRules(context.Background(), RuleQuery{AwardID: 1}, 1, 20)
	require.NoError(t, err)

	// defaults to today: only the January generation is effective
	assert.Equal(t, int64(6), total)
	require.Len(t, rules, 6)
	for _, r := range rules {
		assert.Equal(t, "2025-01-01", r.EffectiveFrom)
		require.NotNil(t, r.EffectiveTo)
		assert.Equal(t, "2025-07-01", *r.EffectiveTo)
		assert.Equal(t, "FT", r.EmploymentTypeCode)
	}

	sat := rules[1]
	assert.Equal(t, "Saturday", sat.PenaltyName)
	assertDecimal(t, "37.5", sat.HourlyRate)
	assertDecimal(t, "1425", sat.WeeklyRate)
	assertDecimal(t, "74100", sat.AnnualRate)

	later, total, err := svc.ListRules(context.Background(), RuleQuery{AwardID: 1, AsOf: datePtr("2025-08-01")}, 1, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	require.Len(t, later, 4)
	assert.Nil(t, later[0].EffectiveTo)
}

func TestExportRules(t *testing.T) {
	store := generatedStore(t)
	svc := NewPayRuleService(ruleStore{store}, fixedClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)})

	var buf bytes.Buffer
	n, err := svc.ExportRules(context.Background(), RuleQuery{AwardID: 1}, &buf)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(report.RulesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, "MA000004", rows[1][0])
	assert.Equal(t, "Retail Employee Level 1", rows[1][4])
	assert.Equal(t, "Saturday", rows[2][5])
	assert.Equal(t, "2025-07-01", rows[2][12])
}

type fakeStatsRepo struct {
	stats []model.AwardRuleStatistics
	asOf  time.Time
	err   error
}

func (f *fakeStatsRepo) RuleStatistics(_ context.Context, asOf time.Time) ([]model.AwardRuleStatistics, error) {
	f.asOf = asOf
	return f.stats, f.err
}

func TestGetRuleStatistics(t *testing.T) {
	repo := &fakeStatsRepo{stats: []model.AwardRuleStatistics{
		{AwardID: 1, AwardCode: "MA000004", RuleCount: 6, MinHourlyRate: dec("25"), MaxHourlyRate: dec("52")},
		{AwardID: 2, AwardCode: "MA000009", RuleCount: 1, MinHourlyRate: dec("30"), MaxHourlyRate: dec("30")},
	}}
	svc := NewStatisticsService(repo, fixedClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)})

	res, err := svc.GetRuleStatistics(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, date("2025-03-01"), repo.asOf)
	assert.Equal(t, "2025-03-01", res.AsOf)
	assert.Equal(t, int64(7), res.TotalRules)
	assert.Equal(t, 2, res.AwardsCovered)
}

func TestGetRuleStatistics_Empty(t *testing.T) {
	svc := NewStatisticsService(&fakeStatsRepo{}, fixedClock{now: buildNow})

	res, err := svc.GetRuleStatistics(context.Background(), datePtr("2030-01-01"))
	require.NoError(t, err)

	assert.Equal(t, "2030-01-01", res.AsOf)
	assert.Equal(t, []model.AwardRuleStatistics{}, res.Awards)
	assert.Zero(t, res.TotalRules)
}

func TestGetRuleStatistics_Error(t *testing.T) {
	boom := errors.New("timeout")
	svc := NewStatisticsService(&fakeStatsRepo{err: boom}, fixedClock{now: buildNow})

	_, err := svc.GetRuleStatistics(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}

func TestAwardService(t *testing.T) {
	store := retailStore()
	store.awards[0].Industry = &model.Industry{Code: "RETAIL", Name: "Retail"}
	store.awards[2].OperativeTo = datePtr("2020-01-01")
	svc := NewAwardService(store)
	ctx := context.Background()

	active, total, err := svc.ListAwards(ctx, 1, 20, true)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, active, 2)
	assert.Equal(t, "RETAIL", active[0].IndustryCode)
	assert.Equal(t, "2020-01-01", active[0].OperativeFrom)

	all, total, err := svc.ListAwards(ctx, 1, 20, false)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.NotNil(t, all[2].OperativeTo)
	assert.Equal(t, "2020-01-01", *all[2].OperativeTo)

	award, err := svc.GetAward(ctx, 3)
	require.NoError(t, err)
	assert.False(t, award.IsActive)

	_, err = svc.GetAward(ctx, 42)
	assert.True(t, IsInvalidInput(err))
}

func TestAuditService(t *testing.T) {
	store := generatedStore(t)
	svc := NewAuditService(auditStore{store})

	logs, total, err := svc.GetAuditLogs(context.Background(), 1, 20, model.ActionGenerateRules)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, logs, 2)
	assert.Equal(t, model.GeneratedBySystem, logs[0].Actor)
	assert.Equal(t, "1", logs[0].EntityID)

	_, total, err = svc.GetAuditLogs(context.Background(), 1, 20, model.ActionRegenerateRules)
	require.NoError(t, err)
	assert.Zero(t, total)
}
