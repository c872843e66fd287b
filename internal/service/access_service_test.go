package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ReponseBlaise/Preferred-System/internal/authz"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasProjectAccess_ManagerBypass(t *testing.T) {
	projectRepo := newStubProjectRepo()
	svc := service.NewAccessService(projectRepo)

	// no assignment rows at all: managers still get in
	ok := svc.HasProjectAccess(context.Background(), uuid.New(), authz.RoleManager, uuid.New())
	assert.True(t, ok)
}

func TestHasProjectAccess_RequiresAssignment(t *testing.T) {
	projectRepo := newStubProjectRepo()
	svc := service.NewAccessService(projectRepo)
	p := seedProject(projectRepo, "Warehouse Extension", "WH-01")

	userID := uuid.New()
	assert.False(t, svc.HasProjectAccess(context.Background(), userID, authz.RoleEmployee, p.ID))

	err := projectRepo.CreateAssignment(context.Background(), &model.ProjectAssignment{UserID: userID, ProjectID: p.ID})
	require.NoError(t, err)
	assert.True(t, svc.HasProjectAccess(context.Background(), userID, authz.RoleEmployee, p.ID))

	// an assignment to one project grants nothing elsewhere
	other := seedProject(projectRepo, "Bridge Works", "BR-02")
	assert.False(t, svc.HasProjectAccess(context.Background(), userID, authz.RoleEmployee, other.ID))
}

func TestHasProjectAccess_LookupFailureDenies(t *testing.T) {
	projectRepo := newStubProjectRepo()
	projectRepo.assignErr = errors.New("connection refused")
	svc := service.NewAccessService(projectRepo)

	ok := svc.HasProjectAccess(context.Background(), uuid.New(), authz.RoleStoreman, uuid.New())
	assert.False(t, ok)
}
