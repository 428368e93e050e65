package authz

import (
	"context"
	"errors"
	"testing"

	"github.com/LeakhenaSok/StudioFlow/internal/constant"
)

// fakeDirectory is an in-memory Directory for predicate tests.
type fakeDirectory struct {
	roles      map[string]constant.UserRole
	managers   map[string]*string
	members    map[string]map[string]bool
	roleErr    error
	managerErr error
	memberErr  error
}

func (f fakeDirectory) RoleOf(_ context.Context, userID string) (constant.UserRole, error) {
	if f.roleErr != nil {
		return "", f.roleErr
	}
	role, ok := f.roles[userID]
	if !ok {
		return "", errors.New("profile not found")
	}
	return role, nil
}

func (f fakeDirectory) ProjectManagerID(_ context.Context, projectID string) (*string, error) {
	if f.managerErr != nil {
		return nil, f.managerErr
	}
	return f.managers[projectID], nil
}

func (f fakeDirectory) HasMembership(_ context.Context, projectID, userID string) (bool, error) {
	if f.memberErr != nil {
		return false, f.memberErr
	}
	return f.members[projectID][userID], nil
}

func strPtr(s string) *string { return &s }

func newFakeDirectory() fakeDirectory {
	return fakeDirectory{
		roles: map[string]constant.UserRole{
			"admin1":   constant.UserRoleAdmin,
			"manager1": constant.UserRolePhotographer,
			"member1":  constant.UserRolePhotographer,
			"member2":  constant.UserRoleDesigner,
			"outsider": constant.UserRoleDesigner,
		},
		managers: map[string]*string{
			"p1": strPtr("manager1"),
			"p2": nil,
		},
		members: map[string]map[string]bool{
			"p1": {"member1": true, "member2": true},
		},
	}
}

func TestCanReadProjectDisjuncts(t *testing.T) {
	e := NewEvaluator(newFakeDirectory(), nil)
	ctx := context.Background()

	tests := []struct {
		name      string
		projectID string
		callerID  string
		want      bool
	}{
		{"manager can read", "p1", "manager1", true},
		{"photographer member can read", "p1", "member1", true},
		{"designer member can read", "p1", "member2", true},
		{"admin can read without membership", "p1", "admin1", true},
		{"outsider denied", "p1", "outsider", false},
		{"manager of other project denied", "p2", "member1", false},
		{"empty caller denied", "p1", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := e.CanReadProject(ctx, tt.projectID, tt.callerID); got != tt.want {
				t.Errorf("CanReadProject(%q, %q) = %v, want %v", tt.projectID, tt.callerID, got, tt.want)
			}
		})
	}
}

func TestProjectWritePredicates(t *testing.T) {
	e := NewEvaluator(newFakeDirectory(), nil)
	ctx := context.Background()

	if !e.CanCreateProject(ctx, "admin1") {
		t.Error("admin must be able to create projects")
	}
	if e.CanCreateProject(ctx, "manager1") {
		t.Error("non-admin must not create projects")
	}

	if !e.CanUpdateProject(ctx, "p1", "manager1") {
		t.Error("manager must be able to update own project")
	}
	if !e.CanUpdateProject(ctx, "p1", "admin1") {
		t.Error("admin must be able to update any project")
	}
	if e.CanUpdateProject(ctx, "p1", "member1") {
		t.Error("plain member must not update the project")
	}

	if !e.CanDeleteProject(ctx, "admin1") || e.CanDeleteProject(ctx, "manager1") {
		t.Error("project deletion is admin-only")
	}

	if !e.CanWriteMembership(ctx, "p1", "manager1") || e.CanWriteMembership(ctx, "p1", "member2") {
		t.Error("membership writes are manager/admin-only")
	}
}

func TestCanDeleteFile(t *testing.T) {
	e := NewEvaluator(newFakeDirectory(), nil)
	ctx := context.Background()

	uploader := strPtr("member1")

	if !e.CanDeleteFile(ctx, uploader, "member1") {
		t.Error("uploader must be able to delete own file")
	}
	if e.CanDeleteFile(ctx, uploader, "member2") {
		t.Error("non-uploader non-admin must not delete the file")
	}
	if !e.CanDeleteFile(ctx, uploader, "admin1") {
		t.Error("admin must be able to delete any file")
	}
	if e.CanDeleteFile(ctx, nil, "member1") {
		t.Error("orphaned file must only be deletable by admin")
	}
}

func TestEventAndCommentMutation(t *testing.T) {
	e := NewEvaluator(newFakeDirectory(), nil)
	ctx := context.Background()

	if !e.CanMutateEvent(ctx, "member1", "member1") {
		t.Error("creator must be able to mutate own event")
	}
	if e.CanMutateEvent(ctx, "member1", "member2") {
		t.Error("non-creator non-admin must not mutate the event")
	}
	if !e.CanMutateEvent(ctx, "member1", "admin1") {
		t.Error("admin must be able to mutate any event")
	}

	if !e.CanCreateComment(ctx, "p1", "member1") {
		t.Error("project member must be able to comment")
	}
	if e.CanCreateComment(ctx, "p1", "outsider") {
		t.Error("outsider must not be able to comment")
	}
	if !e.CanMutateComment(ctx, "member2", "member2") || e.CanMutateComment(ctx, "member2", "member1") {
		t.Error("comment mutation is author/admin-only")
	}
}

func TestProfilePredicates(t *testing.T) {
	e := NewEvaluator(newFakeDirectory(), nil)
	ctx := context.Background()

	if !e.CanUpdateProfile(ctx, "member1", "member1") {
		t.Error("user must be able to update own profile")
	}
	if e.CanUpdateProfile(ctx, "member1", "member2") {
		t.Error("user must not update another profile")
	}
	if !e.CanUpdateProfile(ctx, "admin1", "member2") {
		t.Error("admin must be able to update any profile")
	}
	if !e.CanManageProfiles(ctx, "admin1") || e.CanManageProfiles(ctx, "member1") {
		t.Error("profile management is admin-only")
	}
}

// Unresolvable lookups must deny, never fall through to allow.
func TestFailClosed(t *testing.T) {
	ctx := context.Background()

	dir := newFakeDirectory()
	dir.roleErr = errors.New("db down")
	e := NewEvaluator(dir, nil)

	if e.IsAdmin(ctx, "admin1") {
		t.Error("role lookup failure must deny admin status")
	}
	if e.CanCreateProject(ctx, "admin1") {
		t.Error("role lookup failure must deny project creation")
	}

	dir = newFakeDirectory()
	dir.managerErr = errors.New("db down")
	dir.memberErr = errors.New("db down")
	dir.roleErr = errors.New("db down")
	e = NewEvaluator(dir, nil)

	if e.CanReadProject(ctx, "p1", "manager1") {
		t.Error("lookup failures must deny project read")
	}

	// Unknown caller with a healthy directory still denies.
	e = NewEvaluator(newFakeDirectory(), nil)
	if e.IsAdmin(ctx, "ghost") {
		t.Error("caller without a profile must not be admin")
	}
}
