package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jobtrackr/jobtracker/internal/core/domain"
	"github.com/jobtrackr/jobtracker/internal/core/ports"
)

// testLogger discards everything; service logs are not under test.
var testLogger = zerolog.Nop()

// stubApplicationRepo is an in-memory ports.ApplicationRepository. Events
// passed alongside mutations are recorded so tests can assert on the audit
// trail the same way the real transaction would persist it.
type stubApplicationRepo struct {
	apps   map[uuid.UUID]*domain.Application
	events []*domain.TimelineEvent

	listFilter ports.ListApplicationsFilter
	listResult []*domain.Application
	listTotal  int64

	creationTimes []time.Time
	stageCounts   map[domain.Stage]int64
	dueApps       []*domain.Application

	err error
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{apps: make(map[uuid.UUID]*domain.Application)}
}

func (r *stubApplicationRepo) Create(ctx context.Context, app *domain.Application, event *domain.TimelineEvent) error {
	if r.err != nil {
		return r.err
	}
	r.apps[app.ID] = app
	if event != nil {
		r.events = append(r.events, event)
	}
	return nil
}

func (r *stubApplicationRepo) CreateBatch(ctx context.Context, apps []*domain.Application) error {
	if r.err != nil {
		return r.err
	}
	for _, app := range apps {
		r.apps[app.ID] = app
	}
	return nil
}

func (r *stubApplicationRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Application, error) {
	if r.err != nil {
		return nil, r.err
	}
	app, ok := r.apps[id]
	if !ok || app.UserID != userID {
		return nil, domain.ErrApplicationNotFound
	}
	return app, nil
}

func (r *stubApplicationRepo) List(ctx context.Context, filter ports.ListApplicationsFilter) ([]*domain.Application, int64, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	r.listFilter = filter
	return r.listResult, r.listTotal, nil
}

func (r *stubApplicationRepo) Update(ctx context.Context, app *domain.Application, event *domain.TimelineEvent) error {
	if r.err != nil {
		return r.err
	}
	r.apps[app.ID] = app
	if event != nil {
		r.events = append(r.events, event)
	}
	return nil
}

func (r *stubApplicationRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	app, ok := r.apps[id]
	if !ok || app.UserID != userID {
		return domain.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

func (r *stubApplicationRepo) CountByStage(ctx context.Context, userID uuid.UUID) (map[domain.Stage]int64, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.stageCounts, nil
}

func (r *stubApplicationRepo) CreationTimesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []time.Time
	for _, t := range r.creationTimes {
		if !t.Before(since) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) ListDueActions(ctx context.Context, userID uuid.UUID, due time.Time) ([]*domain.Application, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Application
	for _, app := range r.dueApps {
		if app.UserID == userID {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) lastEvent() *domain.TimelineEvent {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

// stubUserRepo is an in-memory ports.UserRepository.
type stubUserRepo struct {
	users map[uuid.UUID]*domain.User
	err   error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uuid.UUID]*domain.User)}
}

func (r *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrEmailTaken
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(ctx context.Context, user *domain.User) error {
	if r.err != nil {
		return r.err
	}
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) ListReminderEnabled(ctx context.Context) ([]*domain.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.User
	for _, u := range r.users {
		if u.EmailRemindersEnabled {
			out = append(out, u)
		}
	}
	return out, nil
}

// stubContactRepo is an in-memory ports.ContactRepository.
type stubContactRepo struct {
	contacts map[uuid.UUID]*domain.Contact
	events   []*domain.TimelineEvent
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{contacts: make(map[uuid.UUID]*domain.Contact)}
}

func (r *stubContactRepo) Create(ctx context.Context, contact *domain.Contact, event *domain.TimelineEvent) error {
	r.contacts[contact.ID] = contact
	if event != nil {
		r.events = append(r.events, event)
	}
	return nil
}

func (r *stubContactRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Contact, error) {
	contact, ok := r.contacts[id]
	if !ok || contact.UserID != userID {
		return nil, domain.ErrContactNotFound
	}
	return contact, nil
}

func (r *stubContactRepo) List(ctx context.Context, filter ports.ListContactsFilter) ([]*domain.Contact, int64, error) {
	var out []*domain.Contact
	for _, c := range r.contacts {
		if c.UserID == filter.UserID {
			out = append(out, c)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubContactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	r.contacts[contact.ID] = contact
	return nil
}

func (r *stubContactRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	contact, ok := r.contacts[id]
	if !ok || contact.UserID != userID {
		return domain.ErrContactNotFound
	}
	delete(r.contacts, id)
	return nil
}

// stubNoteRepo is an in-memory ports.NoteRepository.
type stubNoteRepo struct {
	notes  map[uuid.UUID]*domain.Note
	events []*domain.TimelineEvent
}

func newStubNoteRepo() *stubNoteRepo {
	return &stubNoteRepo{notes: make(map[uuid.UUID]*domain.Note)}
}

func (r *stubNoteRepo) Create(ctx context.Context, note *domain.Note, event *domain.TimelineEvent) error {
	r.notes[note.ID] = note
	if event != nil {
		r.events = append(r.events, event)
	}
	return nil
}

func (r *stubNoteRepo) FindByID(ctx context.Context, id, userID uuid.UUID) (*domain.Note, error) {
	note, ok := r.notes[id]
	if !ok || note.UserID != userID {
		return nil, domain.ErrNoteNotFound
	}
	return note, nil
}

func (r *stubNoteRepo) ListByApplication(ctx context.Context, applicationID uuid.UUID, page, pageSize int) ([]*domain.Note, int64, error) {
	var out []*domain.Note
	for _, n := range r.notes {
		if n.ApplicationID == applicationID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubNoteRepo) Update(ctx context.Context, note *domain.Note) error {
	r.notes[note.ID] = note
	return nil
}

func (r *stubNoteRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	note, ok := r.notes[id]
	if !ok || note.UserID != userID {
		return domain.ErrNoteNotFound
	}
	delete(r.notes, id)
	return nil
}

// stubTimelineRepo is an in-memory ports.TimelineRepository.
type stubTimelineRepo struct {
	events []*domain.TimelineEvent
}

func (r *stubTimelineRepo) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*domain.TimelineEvent, error) {
	var out []*domain.TimelineEvent
	for _, e := range r.events {
		if e.ApplicationID == applicationID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubTimelineRepo) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.TimelineEvent, error) {
	if len(r.events) > limit {
		return r.events[:limit], nil
	}
	return r.events, nil
}

// recordingSender captures reminder emails instead of dialing SMTP.
type recordingSender struct {
	sent    map[string][]ports.ReminderItem
	failFor map[string]error
}

func newRecordingSender() *recordingSender {
	return &recordingSender{sent: make(map[string][]ports.ReminderItem), failFor: make(map[string]error)}
}

func (s *recordingSender) SendDailyReminders(ctx context.Context, toEmail, userName string, items []ports.ReminderItem) error {
	if err := s.failFor[toEmail]; err != nil {
		return err
	}
	s.sent[toEmail] = items
	return nil
}

// stubGuard is an in-memory ports.SendGuard.
type stubGuard struct {
	marked map[string]bool
	err    error
}

func newStubGuard() *stubGuard {
	return &stubGuard{marked: make(map[string]bool)}
}

func (g *stubGuard) AlreadySent(ctx context.Context, userID string, day time.Time) (bool, error) {
	if g.err != nil {
		return false, g.err
	}
	return g.marked[userID+day.Format("2006-01-02")], nil
}

func (g *stubGuard) MarkSent(ctx context.Context, userID string, day time.Time) error {
	if g.err != nil {
		return g.err
	}
	g.marked[userID+day.Format("2006-01-02")] = true
	return nil
}
