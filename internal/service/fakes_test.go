package service

import (
	"sort"
	"time"

	"github.com/fittrackapp/fittrack/internal/model"
	"github.com/fittrackapp/fittrack/internal/repository"
)

// In-memory repository doubles. They mirror the ownership filtering the SQL
// repositories do so service tests exercise the same not-found paths.

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) ByID(id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) ByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return repository.ErrUserNotFound
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeGoalRepo struct {
	goals map[string]*model.Goal
}

func newFakeGoalRepo() *fakeGoalRepo {
	return &fakeGoalRepo{goals: make(map[string]*model.Goal)}
}

func (r *fakeGoalRepo) Create(goal *model.Goal) error {
	clone := *goal
	r.goals[goal.ID] = &clone
	return nil
}

func (r *fakeGoalRepo) ByID(userID, goalID string) (*model.Goal, error) {
	goal, ok := r.goals[goalID]
	if !ok || goal.UserID != userID {
		return nil, repository.ErrGoalNotFound
	}
	clone := *goal
	return &clone, nil
}

func (r *fakeGoalRepo) Goals(userID, sortBy string) ([]*model.Goal, error) {
	var goals []*model.Goal
	for _, goal := range r.goals {
		if goal.UserID == userID {
			clone := *goal
			goals = append(goals, &clone)
		}
	}
	sort.Slice(goals, func(i, j int) bool { return goals[i].ID < goals[j].ID })
	return goals, nil
}

func (r *fakeGoalRepo) Update(goal *model.Goal) error {
	existing, ok := r.goals[goal.ID]
	if !ok || existing.UserID != goal.UserID {
		return repository.ErrGoalNotFound
	}
	clone := *goal
	r.goals[goal.ID] = &clone
	return nil
}

func (r *fakeGoalRepo) Delete(userID, goalID string) error {
	goal, ok := r.goals[goalID]
	if !ok || goal.UserID != userID {
		return repository.ErrGoalNotFound
	}
	delete(r.goals, goalID)
	return nil
}

type fakeProgressRepo struct {
	entries map[string]*model.ProgressEntry
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{entries: make(map[string]*model.ProgressEntry)}
}

func (r *fakeProgressRepo) Create(entry *model.ProgressEntry) error {
	clone := *entry
	r.entries[entry.ID] = &clone
	return nil
}

func (r *fakeProgressRepo) ByID(id string) (*model.ProgressEntry, error) {
	entry, ok := r.entries[id]
	if !ok {
		return nil, repository.ErrProgressEntryNotFound
	}
	clone := *entry
	return &clone, nil
}

func (r *fakeProgressRepo) ForGoal(goalID string) ([]model.ProgressEntry, error) {
	entries := []model.ProgressEntry{}
	for _, entry := range r.entries {
		if entry.GoalID == goalID {
			entries = append(entries, *entry)
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries, nil
}

func (r *fakeProgressRepo) ForGoals(goalIDs []string) (map[string][]model.ProgressEntry, error) {
	byGoal := make(map[string][]model.ProgressEntry)
	for _, id := range goalIDs {
		entries, _ := r.ForGoal(id)
		if len(entries) > 0 {
			byGoal[id] = entries
		}
	}
	return byGoal, nil
}

func (r *fakeProgressRepo) Update(entry *model.ProgressEntry) error {
	if _, ok := r.entries[entry.ID]; !ok {
		return repository.ErrProgressEntryNotFound
	}
	clone := *entry
	r.entries[entry.ID] = &clone
	return nil
}

func (r *fakeProgressRepo) Delete(id string) error {
	if _, ok := r.entries[id]; !ok {
		return repository.ErrProgressEntryNotFound
	}
	delete(r.entries, id)
	return nil
}

type fakePostRepo struct {
	posts map[string]*model.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[string]*model.Post)}
}

func (r *fakePostRepo) Create(post *model.Post) error {
	clone := *post
	r.posts[post.ID] = &clone
	return nil
}

func (r *fakePostRepo) Recent(limit int) ([]*model.Post, error) {
	var posts []*model.Post
	for _, post := range r.posts {
		clone := *post
		posts = append(posts, &clone)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	if len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *fakePostRepo) Delete(userID, postID string) error {
	post, ok := r.posts[postID]
	if !ok || post.UserID != userID {
		return repository.ErrPostNotFound
	}
	delete(r.posts, postID)
	return nil
}

// fixedClock pins "now" for deterministic deadline and date validation.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
