package service_test

import (
	"context"
	"testing"

	"github.com/ReponseBlaise/Preferred-System/internal/apierror"
	"github.com/ReponseBlaise/Preferred-System/internal/authz"
	"github.com/ReponseBlaise/Preferred-System/internal/dto"
	"github.com/ReponseBlaise/Preferred-System/internal/model"
	"github.com/ReponseBlaise/Preferred-System/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildEnquirySvc() (service.EnquiryService, *stubEnquiryRepo, *stubUserRepo, *stubNotificationRepo) {
	enquiryRepo := newStubEnquiryRepo()
	userRepo := newStubUserRepo()
	notificationRepo := &stubNotificationRepo{}
	notifier := service.NewNotificationService(notificationRepo)
	svc := service.NewEnquiryService(enquiryRepo, userRepo, notifier, nil, testAudit())
	return svc, enquiryRepo, userRepo, notificationRepo
}

func seedUser(repo *stubUserRepo, name, email string, role authz.Role) *model.User {
	u := &model.User{
		ID:       uuid.New(),
		Username: email,
		Email:    email,
		FullName: name,
		Role:     role,
		IsActive: true,
	}
	repo.users[u.ID] = u
	return u
}

func TestCreateEnquiry_DefaultsToManager(t *testing.T) {
	svc, _, userRepo, notifications := buildEnquirySvc()
	manager := seedUser(userRepo, "Site Manager", "manager@example.com", authz.RoleManager)
	sender := seedUser(userRepo, "Worker One", "worker@example.com", authz.RoleEmployee)

	resp, err := svc.Create(context.Background(), sender.ID, dto.CreateEnquiryRequest{
		Subject: "Broken mixer",
		Message: "The concrete mixer on site B is down.",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, manager.ID.String(), resp.ToUser)
	assert.Equal(t, model.EnquiryPending, resp.Status)
	assert.Equal(t, "Worker One", resp.FromUserName)

	// recipient got an in-app notification
	require.Len(t, notifications.notifications, 1)
	assert.Equal(t, manager.ID, notifications.notifications[0].UserID)
}

func TestCreateEnquiry_WithAttachment(t *testing.T) {
	svc, _, userRepo, _ := buildEnquirySvc()
	seedUser(userRepo, "Site Manager", "manager@example.com", authz.RoleManager)
	sender := seedUser(userRepo, "Worker One", "worker@example.com", authz.RoleEmployee)

	url := "/uploads/abc123.pdf"
	resp, err := svc.Create(context.Background(), sender.ID, dto.CreateEnquiryRequest{
		Subject: "Invoice question",
		Message: "See the attached invoice.",
	}, &url)
	require.NoError(t, err)
	require.NotNil(t, resp.AttachmentURL)
	assert.Equal(t, url, *resp.AttachmentURL)
}

func TestGetEnquiry_ParticipantsOnly(t *testing.T) {
	svc, _, userRepo, _ := buildEnquirySvc()
	manager := seedUser(userRepo, "Site Manager", "manager@example.com", authz.RoleManager)
	sender := seedUser(userRepo, "Worker One", "worker@example.com", authz.RoleEmployee)
	stranger := seedUser(userRepo, "Worker Two", "other@example.com", authz.RoleEmployee)

	created, err := svc.Create(context.Background(), sender.ID, dto.CreateEnquiryRequest{
		Subject: "Broken mixer",
		Message: "The concrete mixer on site B is down.",
	}, nil)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.Get(context.Background(), sender.ID, authz.RoleEmployee, id)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), manager.ID, authz.RoleManager, id)
	assert.NoError(t, err)

	_, err = svc.Get(context.Background(), stranger.ID, authz.RoleEmployee, id)
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindAuthorization, apiErr.Kind)
	assert.Equal(t, "access denied", apiErr.Message)
}

func TestRespondEnquiry_NotifiesSender(t *testing.T) {
	svc, _, userRepo, notifications := buildEnquirySvc()
	manager := seedUser(userRepo, "Site Manager", "manager@example.com", authz.RoleManager)
	sender := seedUser(userRepo, "Worker One", "worker@example.com", authz.RoleEmployee)

	created, err := svc.Create(context.Background(), sender.ID, dto.CreateEnquiryRequest{
		Subject: "Broken mixer",
		Message: "The concrete mixer on site B is down.",
	}, nil)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	resp, err := svc.Respond(context.Background(), manager.ID, id, dto.RespondEnquiryRequest{
		Response: "Replacement arrives tomorrow.",
	})
	require.NoError(t, err)
	assert.Equal(t, model.EnquiryResponded, resp.Status)
	require.NotNil(t, resp.Response)
	assert.Equal(t, "Replacement arrives tomorrow.", *resp.Response)
	require.NotNil(t, resp.RespondedBy)
	assert.Equal(t, manager.ID.String(), *resp.RespondedBy)

	// one notification for the recipient at create, one for the sender now
	require.Len(t, notifications.notifications, 2)
	assert.Equal(t, sender.ID, notifications.notifications[1].UserID)
}

func TestRespondEnquiry_ClosedConflict(t *testing.T) {
	svc, _, userRepo, _ := buildEnquirySvc()
	manager := seedUser(userRepo, "Site Manager", "manager@example.com", authz.RoleManager)
	sender := seedUser(userRepo, "Worker One", "worker@example.com", authz.RoleEmployee)

	created, err := svc.Create(context.Background(), sender.ID, dto.CreateEnquiryRequest{
		Subject: "Broken mixer",
		Message: "The concrete mixer on site B is down.",
	}, nil)
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	_, err = svc.UpdateStatus(context.Background(), manager.ID, id, dto.UpdateEnquiryStatusRequest{Status: model.EnquiryClosed})
	require.NoError(t, err)

	_, err = svc.Respond(context.Background(), manager.ID, id, dto.RespondEnquiryRequest{Response: "Too late."})
	var apiErr *apierror.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierror.KindConflict, apiErr.Kind)
}

func TestPendingCount_PerRole(t *testing.T) {
	svc, _, userRepo, _ := buildEnquirySvc()
	manager := seedUser(userRepo, "Site Manager", "manager@example.com", authz.RoleManager)
	workerA := seedUser(userRepo, "Worker One", "worker1@example.com", authz.RoleEmployee)
	workerB := seedUser(userRepo, "Worker Two", "worker2@example.com", authz.RoleEmployee)

	// two enquiries to the manager, one addressed to worker B
	for _, from := range []uuid.UUID{workerA.ID, workerB.ID} {
		_, err := svc.Create(context.Background(), from, dto.CreateEnquiryRequest{
			Subject: "Question",
			Message: "A question for the manager.",
		}, nil)
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), workerA.ID, dto.CreateEnquiryRequest{
		ToUser:  workerB.ID.String(),
		Subject: "Handover",
		Message: "Shift handover notes.",
	}, nil)
	require.NoError(t, err)

	// managers see everything pending, others only what is addressed to them
	count, err := svc.PendingCount(context.Background(), manager.ID, authz.RoleManager)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	count, err = svc.PendingCount(context.Background(), workerB.ID, authz.RoleEmployee)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}
