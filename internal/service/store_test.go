package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"payrates/internal/model"
	"payrates/internal/ratelock"
	"payrates/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// memStore is an in-memory stand-in for every repository the services use.
// RunInTx snapshots rules and audit rows and restores them when fn fails.
type memStore struct {
	mu sync.Mutex

	awards          []model.Award
	employmentTypes []model.EmploymentType
	classifications []model.Classification
	penalties       []model.PenaltyRate
	allowances      []model.Allowance
	tags            []model.Tag
	tagPenalties    []model.TagPenaltyMapping
	rules           []model.ComputedPayRule
	audits          []model.AuditLog

	nextRuleID int64
	// failInsert makes CreateBatch fail for the listed award ids
	failInsert map[int]error
	// storeErr makes every read fail
	storeErr error
}

func effectiveAt(from time.Time, to *time.Time, asOf time.Time) bool {
	return !from.After(asOf) && (to == nil || to.After(asOf))
}

func date(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func datePtr(s string) *time.Time {
	t := date(s)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type recordedEvent struct {
	name string
	data interface{}
}

type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *fakePublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{name: event, data: data})
}

func (p *fakePublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.name)
	}
	return out
}

type fakeLocker struct {
	err      error
	acquired []string
	released int
}

func (l *fakeLocker) Acquire(_ context.Context, name string) (ratelock.Release, error) {
	if l.err != nil {
		return nil, l.err
	}
	l.acquired = append(l.acquired, name)
	return func() { l.released++ }, nil
}

// --- TransactionManager ---

func (s *memStore) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	s.mu.Lock()
	rules := append([]model.ComputedPayRule(nil), s.rules...)
	audits := append([]model.AuditLog(nil), s.audits...)
	s.mu.Unlock()

	if err := fn(ctx); err != nil {
		s.mu.Lock()
		s.rules = rules
		s.audits = audits
		s.mu.Unlock()
		return err
	}
	return nil
}

// --- AwardRepository ---

func (s *memStore) FindByID(_ context.Context, id int) (*model.Award, error) {
	if s.storeErr != nil {
		return nil, s.storeErr
	}
	for _, a := range s.awards {
		if a.ID == id {
			a := a
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *memStore) FindActiveByID(ctx context.Context, id int) (*model.Award, error) {
	a, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !a.IsActive {
		return nil, gorm.ErrRecordNotFound
	}
	return a, nil
}

func (s *memStore) ExistsActive(ctx context.Context, id int) (bool, error) {
	if s.storeErr != nil {
		return false, s.storeErr
	}
	_, err := s.FindActiveByID(ctx, id)
	return err == nil, nil
}

func (s *memStore) ListActiveIDs(_ context.Context) ([]int, error) {
	if s.storeErr != nil {
		return nil, s.storeErr
	}
	var ids []int
	for _, a := range s.awards {
		if a.IsActive {
			ids = append(ids, a.ID)
		}
	}
	sort.Ints(ids)
	return ids, nil
}

func (s *memStore) List(_ context.Context, page, limit int, activeOnly bool) ([]model.Award, int64, error) {
	if s.storeErr != nil {
		return nil, 0, s.storeErr
	}
	var matched []model.Award
	for _, a := range s.awards {
		if !activeOnly || a.IsActive {
			matched = append(matched, a)
		}
	}
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// --- EmploymentTypeRepository ---

type employmentTypeStore struct{ *memStore }

func (s employmentTypeStore) FindActiveByCode(_ context.Context, code string) (*model.EmploymentType, error) {
	if s.storeErr != nil {
		return nil, s.storeErr
	}
	for _, et := range s.employmentTypes {
		if et.Code == code && et.IsActive {
			et := et
			return &et, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s employmentTypeStore) ExistsActiveByCode(ctx context.Context, code string) (bool, error) {
	if s.storeErr != nil {
		return false, s.storeErr
	}
	_, err := s.FindActiveByCode(ctx, code)
	return err == nil, nil
}

// --- ClassificationRepository ---

type classificationStore struct{ *memStore }

func (s classificationStore) FindEffective(_ context.Context, awardID, level, employmentTypeID int, asOf time.Time) (*model.Classification, error) {
	if s.storeErr != nil {
		return nil, s.storeErr
	}
	var best *model.Classification
	for i := range s.classifications {
		c := s.classifications[i]
		if c.AwardID == awardID && c.Level == level && c.EmploymentTypeID == employmentTypeID &&
			c.IsActive && effectiveAt(c.OperativeFrom, c.OperativeTo, asOf) {
			if best == nil || c.OperativeFrom.After(best.OperativeFrom) {
				best = &c
			}
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return best, nil
}

func (s classificationStore) ListActiveEffective(_ context.Context, awardID int, asOf time.Time) ([]model.Classification, error) {
	if s.storeErr != nil {
		return nil, s.storeErr
	}
	var out []model.Classification
	for _, c := range s.classifications {
		if c.AwardID == awardID && c.IsActive && effectiveAt(c.OperativeFrom, c.OperativeTo, asOf) {
			out = append(out, c)
		}
	}
	return out, nil
}

// --- PenaltyRateRepository ---

type penaltyStore struct{ *memStore }

func (s penaltyStore) ListActiveEffective(_ context.Context, awardID int, asOf time.Time) ([]model.PenaltyRate, error) {
	if s.storeErr != nil {
		return nil, s.storeErr
	}
	var out []model.PenaltyRate
	for _, p := range s.penalties {
		if p.AwardID == awardID && p.IsActive && effectiveAt(p.OperativeFrom, p.OperativeTo, asOf) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s penaltyStore) IDsForTags(_ context.Context, tagIDs []int) ([]int, error) {
	seen := map[int]bool{}
	var out []int
	for _, m := range s.tagPenalties {
		for _, id := range tagIDs {
			if m.TagID == id && !seen[m.PenaltyRateID] {
				seen[m.PenaltyRateID] = true
				out = append(out, m.PenaltyRateID)
			}
		}
	}
	return out, nil
}

// --- AllowanceRepository ---

func (s *memStore) ListActiveEffectiveByIDs(_ context.Context, awardID int, ids []int, asOf time.Time) ([]model.Allowance, error) {
	want := map[int]bool{}
	for _, id := range ids {
		want[id] = true
	}
	var out []model.Allowance
	for _, a := range s.allowances {
		if want[a.ID] && a.AwardID == awardID && a.IsActive && effectiveAt(a.OperativeFrom, a.OperativeTo, asOf) {
			out = append(out, a)
		}
	}
	return out, nil
}

// --- TagRepository ---

func (s *memStore) NamesByIDs(_ context.Context, ids []int) ([]string, error) {
	want := map[int]bool{}
	for _, id := range ids {
		want[id] = true
	}
	names := []string{}
	for _, t := range s.tags {
		if want[t.ID] {
			names = append(names, t.Name)
		}
	}
	return names, nil
}

// --- ComputedRuleRepository ---

type ruleStore struct{ *memStore }

func (s ruleStore) DeleteByAwardAndEffectiveFrom(_ context.Context, awardID int, effectiveFrom time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.rules[:0:0]
	var n int64
	for _, r := range s.rules {
		if r.AwardID == awardID && r.EffectiveFrom.Equal(effectiveFrom) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	s.rules = kept
	return n, nil
}

func (s ruleStore) CloseOpenBefore(_ context.Context, awardID int, effectiveFrom time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.rules {
		r := &s.rules[i]
		if r.AwardID == awardID && r.EffectiveFrom.Before(effectiveFrom) && (r.EffectiveTo == nil || r.EffectiveTo.After(effectiveFrom)) {
			to := effectiveFrom
			r.EffectiveTo = &to
			n++
		}
	}
	return n, nil
}

func (s ruleStore) NextEffectiveFrom(_ context.Context, awardID int, effectiveFrom time.Time) (*time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var next *time.Time
	for _, r := range s.rules {
		if r.AwardID == awardID && r.EffectiveFrom.After(effectiveFrom) && (next == nil || r.EffectiveFrom.Before(*next)) {
			from := r.EffectiveFrom
			next = &from
		}
	}
	return next, nil
}

func (s ruleStore) CreateBatch(_ context.Context, batch []model.ComputedPayRule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range batch {
		if err := s.failInsert[r.AwardID]; err != nil {
			return err
		}
	}
	for _, r := range batch {
		s.nextRuleID++
		r.ID = s.nextRuleID
		s.rules = append(s.rules, r)
	}
	return nil
}

func (s ruleStore) matching(filter repository.RuleFilter) []model.ComputedPayRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.ComputedPayRule
	for _, r := range s.rules {
		if !r.IsActive {
			continue
		}
		if filter.AwardID > 0 && r.AwardID != filter.AwardID {
			continue
		}
		if filter.AsOf != nil && !effectiveAt(r.EffectiveFrom, r.EffectiveTo, *filter.AsOf) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (s ruleStore) List(_ context.Context, filter repository.RuleFilter, page, limit int) ([]model.ComputedPayRule, int64, error) {
	matched := s.matching(filter)
	return paginate(matched, page, limit), int64(len(matched)), nil
}

func (s ruleStore) ListAll(_ context.Context, filter repository.RuleFilter) ([]model.ComputedPayRule, error) {
	return s.matching(filter), nil
}

func (s ruleStore) forAward(awardID int) []model.ComputedPayRule {
	return s.matching(repository.RuleFilter{AwardID: awardID})
}

// --- AuditRepository ---

type auditStore struct{ *memStore }

func (s auditStore) Log(_ context.Context, entry *model.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audits = append(s.audits, *entry)
	return nil
}

func (s auditStore) List(_ context.Context, page, limit int, action string) ([]model.AuditLog, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []model.AuditLog
	for _, a := range s.audits {
		if action == "" || a.Action == action {
			matched = append(matched, a)
		}
	}
	return paginate(matched, page, limit), int64(len(matched)), nil
}

// --- fixtures ---

// retailStore seeds one retail award with a full time level 1 classification
// (25.00/h, 950.00/wk), Saturday and Sunday penalties and a few allowances.
func retailStore() *memStore {
	return &memStore{
		awards: []model.Award{
			{ID: 1, Code: "MA000004", Name: "General Retail Industry Award", OperativeFrom: date("2020-01-01"), IsActive: true},
			{ID: 2, Code: "MA000009", Name: "Hospitality Industry (General) Award", OperativeFrom: date("2020-01-01"), IsActive: true},
			{ID: 3, Code: "MA000999", Name: "Retired Award", OperativeFrom: date("2010-01-01"), IsActive: false},
		},
		employmentTypes: []model.EmploymentType{
			{ID: 1, Code: model.EmploymentTypeFullTime, Name: "Full Time", IsActive: true},
			{ID: 2, Code: model.EmploymentTypeCasual, Name: "Casual", IsActive: true},
			{ID: 3, Code: model.EmploymentTypeJunior, Name: "Junior", IsActive: false},
		},
		classifications: []model.Classification{
			{ID: 10, AwardID: 1, EmploymentTypeID: 1, Level: 1, Name: "Retail Employee Level 1",
				BaseHourlyRate: dec("25.00"), BaseWeeklyRate: dec("950.00"), OperativeFrom: date("2024-07-01"), IsActive: true},
			{ID: 11, AwardID: 1, EmploymentTypeID: 1, Level: 2, Name: "Retail Employee Level 2",
				BaseHourlyRate: dec("26.00"), BaseWeeklyRate: dec("988.00"), OperativeFrom: date("2024-07-01"), IsActive: true},
			{ID: 12, AwardID: 1, EmploymentTypeID: 1, Level: 3, Name: "Retail Employee Level 3 (superseded)",
				BaseHourlyRate: dec("24.00"), BaseWeeklyRate: dec("912.00"), OperativeFrom: date("2023-07-01"), OperativeTo: datePtr("2024-07-01"), IsActive: true},
			{ID: 20, AwardID: 2, EmploymentTypeID: 2, Level: 1, Name: "Introductory",
				BaseHourlyRate: dec("30.00"), BaseWeeklyRate: dec("1140.00"), OperativeFrom: date("2024-07-01"), IsActive: true},
		},
		penalties: []model.PenaltyRate{
			{ID: 100, AwardID: 1, Code: "SAT", Name: "Saturday", Category: model.PenaltyCategoryWeekend, RateMultiplier: dec("1.5"), OperativeFrom: date("2024-07-01"), IsActive: true},
			{ID: 101, AwardID: 1, Code: "SUN", Name: "Sunday", Category: model.PenaltyCategoryWeekend, RateMultiplier: dec("2.0"), OperativeFrom: date("2024-07-01"), IsActive: true},
			{ID: 102, AwardID: 1, Code: "OLD", Name: "Old Overtime", Category: model.PenaltyCategoryOvertime, RateMultiplier: dec("1.75"), OperativeFrom: date("2024-07-01"), IsActive: false},
		},
		allowances: []model.Allowance{
			{ID: 200, AwardID: 1, Code: "MEAL", Name: "Meal allowance", Amount: dec("5.00"), Unit: model.UnitPerHour, OperativeFrom: date("2024-07-01"), IsActive: true},
			{ID: 201, AwardID: 1, Code: "TOOL", Name: "Tool allowance", Amount: dec("50.00"), Unit: model.UnitPerOccasion, OperativeFrom: date("2024-07-01"), IsActive: true},
			{ID: 202, AwardID: 1, Code: "UNIF", Name: "Uniform allowance", Amount: dec("12.00"), Unit: "PER_WEEK", OperativeFrom: date("2024-07-01"), IsActive: true},
		},
		tags: []model.Tag{
			{ID: 1, Code: "WEEKEND_SAT", Name: "Saturday work", Category: model.TagCategoryRoster, AffectsPenalties: true, IsActive: true},
			{ID: 2, Code: "NIGHT", Name: "Night shift", Category: model.TagCategoryShift, IsActive: true},
		},
		tagPenalties: []model.TagPenaltyMapping{
			{TagID: 1, PenaltyRateID: 100},
		},
	}
}

func newRuleEngine(s *memStore, now time.Time) RuleEngineService {
	return NewRuleEngineService(s, employmentTypeStore{s}, classificationStore{s}, penaltyStore{s}, s, s, fixedClock{now: now}, zap.NewNop())
}

func newRuleBuilder(s *memStore, locker ratelock.Locker, events EventPublisher, now time.Time) RuleBuilderService {
	return NewRuleBuilderService(s, classificationStore{s}, penaltyStore{s}, ruleStore{s}, auditStore{s}, s, locker, events, fixedClock{now: now}, zap.NewNop())
}
