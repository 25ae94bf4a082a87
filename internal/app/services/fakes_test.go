package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/emre/eventra/internal/app/models"
	"github.com/emre/eventra/internal/pkg/apperrors"
)

// fakeUserRepo is an in-memory IUserRepository. It mirrors the constraint
// behavior of the postgres repository: duplicate usernames and emails are
// rejected with the same conflict errors and sort keys outside the
// whitelist are refused.
type fakeUserRepo struct {
	nextID        int64
	nextProfileID int64
	users         map[int64]*models.User
	eventManagers map[int64]*models.EventManager
	volunteers    map[int64]*models.Volunteer
	sponsors      map[int64]*models.Sponsor
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:         make(map[int64]*models.User),
		eventManagers: make(map[int64]*models.EventManager),
		volunteers:    make(map[int64]*models.Volunteer),
		sponsors:      make(map[int64]*models.Sponsor),
	}
}

var fakeSortKeys = map[string]bool{
	"id": true, "name": true, "username": true, "userEmail": true,
	"role": true, "isActive": true, "createdAt": true, "updatedAt": true,
}

func copyUser(u *models.User) *models.User {
	c := *u
	return &c
}

func (r *fakeUserRepo) checkUnique(u *models.User) error {
	for _, existing := range r.users {
		if existing.ID == u.ID {
			continue
		}
		if existing.Username == u.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if existing.UserEmail == u.UserEmail {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	return nil
}

func (r *fakeUserRepo) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if err := r.checkUnique(u); err != nil {
		return 0, err
	}
	r.nextID++
	stored := copyUser(u)
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.users[stored.ID] = stored
	return stored.ID, nil
}

func (r *fakeUserRepo) CreateUserTx(ctx context.Context, tx pgx.Tx, u *models.User) (int64, error) {
	return r.CreateUser(ctx, u)
}

func (r *fakeUserRepo) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (r *fakeUserRepo) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return copyUser(u), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.UserEmail == email {
			return copyUser(u), nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) ListUsers(ctx context.Context, sortBy, sortOrder, name string) ([]*models.User, error) {
	if !fakeSortKeys[sortBy] {
		return nil, apperrors.ErrInvalidSortKey
	}

	out := make([]*models.User, 0, len(r.users))
	for _, u := range r.users {
		if name != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(name)) {
			continue
		}
		out = append(out, copyUser(u))
	}
	sort.Slice(out, func(i, j int) bool {
		var less bool
		switch sortBy {
		case "username":
			less = out[i].Username < out[j].Username
		case "name":
			less = out[i].Name < out[j].Name
		default:
			less = out[i].ID < out[j].ID
		}
		if sortOrder == "desc" {
			return !less
		}
		return less
	})
	return out, nil
}

func (r *fakeUserRepo) UpdateUser(ctx context.Context, u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	if err := r.checkUnique(u); err != nil {
		return err
	}
	stored := copyUser(u)
	stored.UpdatedAt = time.Now()
	r.users[u.ID] = stored
	return nil
}

func (r *fakeUserRepo) UpdateUserStatus(ctx context.Context, id int64, status models.UserStatus) error {
	u, ok := r.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.IsActive = status
	return nil
}

func (r *fakeUserRepo) SetResetPasswordToken(ctx context.Context, userID int64, token string, expires time.Time) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.ResetPasswordToken = &token
	u.ResetPasswordExpires = &expires
	return nil
}

func (r *fakeUserRepo) GetUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	for _, u := range r.users {
		if u.ResetPasswordToken != nil && *u.ResetPasswordToken == token &&
			u.ResetPasswordExpires != nil && u.ResetPasswordExpires.After(time.Now()) {
			return copyUser(u), nil
		}
	}
	return nil, apperrors.ErrInvalidPasswordResetToken
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, userID int64, hashedPassword string) error {
	u, ok := r.users[userID]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	u.Password = hashedPassword
	u.ResetPasswordToken = nil
	u.ResetPasswordExpires = nil
	return nil
}

func (r *fakeUserRepo) CreateEventManager(ctx context.Context, em *models.EventManager) (int64, error) {
	for _, existing := range r.eventManagers {
		if existing.UserID == em.UserID {
			return 0, apperrors.ErrProfileAlreadyExists
		}
	}
	r.nextProfileID++
	stored := *em
	stored.ID = r.nextProfileID
	r.eventManagers[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) CreateEventManagerTx(ctx context.Context, tx pgx.Tx, em *models.EventManager) (int64, error) {
	return r.CreateEventManager(ctx, em)
}

func (r *fakeUserRepo) GetEventManagerByUserID(ctx context.Context, userID int64) (*models.EventManager, error) {
	for _, em := range r.eventManagers {
		if em.UserID == userID {
			c := *em
			return &c, nil
		}
	}
	return nil, apperrors.ErrEventManagerNotFound
}

func (r *fakeUserRepo) GetEventManagerByID(ctx context.Context, id int64) (*models.EventManager, error) {
	em, ok := r.eventManagers[id]
	if !ok {
		return nil, apperrors.ErrEventManagerNotFound
	}
	c := *em
	return &c, nil
}

func (r *fakeUserRepo) UpdateEventManager(ctx context.Context, em *models.EventManager) error {
	if _, ok := r.eventManagers[em.ID]; !ok {
		return apperrors.ErrEventManagerNotFound
	}
	stored := *em
	r.eventManagers[em.ID] = &stored
	return nil
}

func (r *fakeUserRepo) UpdateProfilePicture(ctx context.Context, userID int64, filename string) error {
	for _, em := range r.eventManagers {
		if em.UserID == userID {
			em.ProfilePicture = &filename
			return nil
		}
	}
	return apperrors.ErrEventManagerNotFound
}

func (r *fakeUserRepo) DeleteEventManager(ctx context.Context, id int64) error {
	if _, ok := r.eventManagers[id]; !ok {
		return apperrors.ErrEventManagerNotFound
	}
	delete(r.eventManagers, id)
	return nil
}

func (r *fakeUserRepo) CreateVolunteer(ctx context.Context, v *models.Volunteer) (int64, error) {
	for _, existing := range r.volunteers {
		if existing.UserID == v.UserID {
			return 0, apperrors.ErrProfileAlreadyExists
		}
	}
	r.nextProfileID++
	stored := *v
	stored.ID = r.nextProfileID
	r.volunteers[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) CreateVolunteerTx(ctx context.Context, tx pgx.Tx, v *models.Volunteer) (int64, error) {
	return r.CreateVolunteer(ctx, v)
}

func (r *fakeUserRepo) GetVolunteerByUserID(ctx context.Context, userID int64) (*models.Volunteer, error) {
	for _, v := range r.volunteers {
		if v.UserID == userID {
			c := *v
			return &c, nil
		}
	}
	return nil, apperrors.ErrVolunteerNotFound
}

func (r *fakeUserRepo) GetVolunteerByID(ctx context.Context, id int64) (*models.Volunteer, error) {
	v, ok := r.volunteers[id]
	if !ok {
		return nil, apperrors.ErrVolunteerNotFound
	}
	c := *v
	return &c, nil
}

func (r *fakeUserRepo) UpdateVolunteer(ctx context.Context, v *models.Volunteer) error {
	if _, ok := r.volunteers[v.ID]; !ok {
		return apperrors.ErrVolunteerNotFound
	}
	stored := *v
	r.volunteers[v.ID] = &stored
	return nil
}

func (r *fakeUserRepo) DeleteVolunteer(ctx context.Context, id int64) error {
	if _, ok := r.volunteers[id]; !ok {
		return apperrors.ErrVolunteerNotFound
	}
	delete(r.volunteers, id)
	return nil
}

func (r *fakeUserRepo) CreateSponsor(ctx context.Context, s *models.Sponsor) (int64, error) {
	for _, existing := range r.sponsors {
		if existing.UserID == s.UserID {
			return 0, apperrors.ErrProfileAlreadyExists
		}
	}
	r.nextProfileID++
	stored := *s
	stored.ID = r.nextProfileID
	r.sponsors[stored.ID] = &stored
	return stored.ID, nil
}

func (r *fakeUserRepo) CreateSponsorTx(ctx context.Context, tx pgx.Tx, s *models.Sponsor) (int64, error) {
	return r.CreateSponsor(ctx, s)
}

func (r *fakeUserRepo) GetSponsorByUserID(ctx context.Context, userID int64) (*models.Sponsor, error) {
	for _, s := range r.sponsors {
		if s.UserID == userID {
			c := *s
			return &c, nil
		}
	}
	return nil, apperrors.ErrSponsorNotFound
}

func (r *fakeUserRepo) GetSponsorByID(ctx context.Context, id int64) (*models.Sponsor, error) {
	s, ok := r.sponsors[id]
	if !ok {
		return nil, apperrors.ErrSponsorNotFound
	}
	c := *s
	return &c, nil
}

func (r *fakeUserRepo) UpdateSponsor(ctx context.Context, s *models.Sponsor) error {
	if _, ok := r.sponsors[s.ID]; !ok {
		return apperrors.ErrSponsorNotFound
	}
	stored := *s
	r.sponsors[s.ID] = &stored
	return nil
}

func (r *fakeUserRepo) DeleteSponsor(ctx context.Context, id int64) error {
	if _, ok := r.sponsors[id]; !ok {
		return apperrors.ErrSponsorNotFound
	}
	delete(r.sponsors, id)
	return nil
}

// fakeTokenRepo is an in-memory ITokenRepository
type fakeTokenRepo struct {
	nextID int64
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeTokenRepo) CreateRefreshToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	r.nextID++
	r.tokens[token] = &models.RefreshToken{
		ID:        r.nextID,
		UserID:    userID,
		Token:     token,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *fakeTokenRepo) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	rt, ok := r.tokens[token]
	if !ok {
		return nil, apperrors.ErrTokenNotFound
	}
	c := *rt
	return &c, nil
}

func (r *fakeTokenRepo) RevokeRefreshToken(ctx context.Context, token string) error {
	rt, ok := r.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	rt.Revoked = true
	return nil
}

func (r *fakeTokenRepo) RevokeAllUserTokens(ctx context.Context, userID int64) error {
	for _, rt := range r.tokens {
		if rt.UserID == userID {
			rt.Revoked = true
		}
	}
	return nil
}

func (r *fakeTokenRepo) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	var removed int64
	for token, rt := range r.tokens {
		if rt.IsExpired() {
			delete(r.tokens, token)
			removed++
		}
	}
	return removed, nil
}

// fakeEventRepo is an in-memory IEventRepository. Team membership is a set,
// so assigning the same volunteer twice fails the way the composite primary
// key does in postgres.
type fakeEventRepo struct {
	nextID int64
	events map[int64]*models.Event
	teams  map[int64]map[int64]bool
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events: make(map[int64]*models.Event),
		teams:  make(map[int64]map[int64]bool),
	}
}

func (r *fakeEventRepo) copyEvent(e *models.Event) *models.Event {
	c := *e
	c.VolunteerIDs, _ = r.GetVolunteerIDs(context.Background(), e.ID)
	return &c
}

func (r *fakeEventRepo) CreateEvent(ctx context.Context, event *models.Event) (int64, error) {
	r.nextID++
	stored := *event
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.events[stored.ID] = &stored
	r.teams[stored.ID] = make(map[int64]bool)
	return stored.ID, nil
}

func (r *fakeEventRepo) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, apperrors.ErrEventNotFound
	}
	return r.copyEvent(e), nil
}

func (r *fakeEventRepo) ListEvents(ctx context.Context) ([]*models.Event, error) {
	out := make([]*models.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, r.copyEvent(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEventRepo) ListEventsByManager(ctx context.Context, eventManagerID int64) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range r.events {
		if e.EventManagerID == eventManagerID {
			out = append(out, r.copyEvent(e))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEventRepo) UpdateEvent(ctx context.Context, event *models.Event) error {
	if _, ok := r.events[event.ID]; !ok {
		return apperrors.ErrEventNotFound
	}
	stored := *event
	stored.UpdatedAt = time.Now()
	r.events[event.ID] = &stored
	return nil
}

func (r *fakeEventRepo) DeleteEvent(ctx context.Context, id int64) error {
	if _, ok := r.events[id]; !ok {
		return apperrors.ErrEventNotFound
	}
	delete(r.events, id)
	delete(r.teams, id)
	return nil
}

func (r *fakeEventRepo) AssignVolunteer(ctx context.Context, eventID, volunteerID int64) error {
	team, ok := r.teams[eventID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if team[volunteerID] {
		return apperrors.ErrVolunteerAlreadyOnTeam
	}
	team[volunteerID] = true
	return nil
}

func (r *fakeEventRepo) RemoveVolunteer(ctx context.Context, eventID, volunteerID int64) error {
	team, ok := r.teams[eventID]
	if !ok {
		return apperrors.ErrEventNotFound
	}
	if !team[volunteerID] {
		return apperrors.ErrVolunteerNotFound
	}
	delete(team, volunteerID)
	return nil
}

func (r *fakeEventRepo) GetVolunteerIDs(ctx context.Context, eventID int64) ([]int64, error) {
	ids := make([]int64, 0, len(r.teams[eventID]))
	for id := range r.teams[eventID] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// fakeMailer records sent emails
type fakeMailer struct {
	resetEmails   []string
	resetTokens   []string
	welcomeEmails []string
	failSend      bool
}

func (m *fakeMailer) SendPasswordResetEmail(toEmail, toName, token string) error {
	if m.failSend {
		return context.DeadlineExceeded
	}
	m.resetEmails = append(m.resetEmails, toEmail)
	m.resetTokens = append(m.resetTokens, token)
	return nil
}

func (m *fakeMailer) SendWelcomeEmail(toEmail, toName string) error {
	if m.failSend {
		return context.DeadlineExceeded
	}
	m.welcomeEmails = append(m.welcomeEmails, toEmail)
	return nil
}

// passThroughTx runs the transactional function directly against the fakes
func passThroughTx(ctx context.Context, fn func(ctx context.Context, tx pgx.Tx) error) error {
	return fn(ctx, nil)
}
