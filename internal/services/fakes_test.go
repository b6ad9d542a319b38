package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"eventboard/internal/domain"
)

// fakeEventStore is an in-memory EventStore for tests.
type fakeEventStore struct {
	mu        sync.Mutex
	byID      map[int64]domain.Event
	order     []int64
	nextID    int64
	listCalls int

	listErr   error
	insertErr error
	updateErr error
	deleteErr error

	lastInsert *domain.EventForm
	lastUpdate struct {
		id   int64
		form domain.EventForm
	}
	lastDelete int64
}

func newFakeEventStore() *fakeEventStore {
	return &fakeEventStore{byID: make(map[int64]domain.Event), nextID: 1}
}

func (f *fakeEventStore) seed(e domain.Event) {
	f.byID[e.ID] = e
	f.order = append(f.order, e.ID)
	if e.ID >= f.nextID {
		f.nextID = e.ID + 1
	}
}

func (f *fakeEventStore) ListEvents(ctx context.Context) ([]domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.Event, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.byID[id])
	}
	return out, nil
}

func (f *fakeEventStore) ListEventsByCategory(ctx context.Context, category string) ([]domain.Event, error) {
	all, err := f.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Event, 0, len(all))
	for _, e := range all {
		if e.Category != nil && *e.Category == category {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventStore) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEventStore) InsertEvent(ctx context.Context, form domain.EventForm) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastInsert = &form
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	e := eventFromForm(f.nextID, form)
	f.nextID++
	f.byID[e.ID] = e
	f.order = append(f.order, e.ID)
	return &e, nil
}

func (f *fakeEventStore) UpdateEvent(ctx context.Context, id int64, form domain.EventForm) (*domain.Event, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastUpdate.id = id
	f.lastUpdate.form = form
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.byID[id]; !ok {
		return nil, domain.ErrNotFound
	}
	e := eventFromForm(id, form)
	f.byID[id] = e
	return &e, nil
}

func (f *fakeEventStore) DeleteEvent(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastDelete = id
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func eventFromForm(id int64, form domain.EventForm) domain.Event {
	return domain.Event{
		ID:                id,
		Name:              form.Name,
		Tagline:           form.Tagline,
		Description:       form.Description,
		Organizer:         form.Organizer,
		Category:          form.Category,
		PrizePool:         form.PrizePool,
		Keywords:          form.Keywords,
		Solo:              form.Solo,
		RegistrationPitch: form.RegistrationPitch,
		Rules:             form.Rules,
		Highlights:        form.Highlights,
	}
}

// fakeDayStore is an in-memory DayStore for tests.
type fakeDayStore struct {
	mu     sync.Mutex
	bySlot map[domain.Slot][]domain.DayRecord
	nextID int64

	listErr   error
	insertErr error
	updateErr error
	deleteErr error

	lastInsertSlot    domain.Slot
	lastInsertEventID int64
}

func newFakeDayStore() *fakeDayStore {
	return &fakeDayStore{bySlot: make(map[domain.Slot][]domain.DayRecord), nextID: 1}
}

func (f *fakeDayStore) seed(slot domain.Slot, d domain.DayRecord) {
	f.bySlot[slot] = append(f.bySlot[slot], d)
	if d.ID >= f.nextID {
		f.nextID = d.ID + 1
	}
}

func (f *fakeDayStore) ListDays(ctx context.Context, slot domain.Slot) ([]domain.DayRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]domain.DayRecord, len(f.bySlot[slot]))
	copy(out, f.bySlot[slot])
	return out, nil
}

func (f *fakeDayStore) InsertDay(ctx context.Context, slot domain.Slot, eventID int64, form domain.DayForm) (*domain.DayRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastInsertSlot = slot
	f.lastInsertEventID = eventID
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	d := domain.DayRecord{
		ID:        f.nextID,
		EventID:   eventID,
		Location:  form.Location,
		Date:      form.Date,
		StartTime: form.StartTime,
		EndTime:   form.EndTime,
	}
	f.nextID++
	f.bySlot[slot] = append(f.bySlot[slot], d)
	return &d, nil
}

func (f *fakeDayStore) UpdateDay(ctx context.Context, slot domain.Slot, id int64, form domain.DayForm) (*domain.DayRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	for i, d := range f.bySlot[slot] {
		if d.ID == id {
			d.Location = form.Location
			d.Date = form.Date
			d.StartTime = form.StartTime
			d.EndTime = form.EndTime
			f.bySlot[slot][i] = d
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeDayStore) DeleteDay(ctx context.Context, slot domain.Slot, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, d := range f.bySlot[slot] {
		if d.ID == id {
			f.bySlot[slot] = append(f.bySlot[slot][:i], f.bySlot[slot][i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// fakeInvalidator counts cache invalidations.
type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) Invalidate() { f.calls++ }

// fakeNotifier records notification calls and can fail on demand.
type fakeNotifier struct {
	created []int64
	deleted []int64
	err     error
}

func (f *fakeNotifier) EventCreated(ctx context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, event.ID)
	return nil
}

func (f *fakeNotifier) EventDeleted(ctx context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, event.ID)
	return nil
}

// fakeUserRepo is an in-memory UserRepository for auth tests.
type fakeUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeHasher is a transparent PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) {
	return salt + ":" + password, nil
}

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return fmt.Errorf("mismatch")
	}
	return nil
}

// fakeIssuer issues predictable tokens.
type fakeIssuer struct{ err error }

func (f fakeIssuer) Issue(userID int64, email string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("token-%d-%s", userID, email), nil
}
