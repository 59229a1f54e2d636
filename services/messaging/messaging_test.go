package messaging

import (
	"testing"

	"wukala/database/repository/lawyer"
	"wukala/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConversationRepo struct {
	conversations []models.Conversation
	messages      []models.ChatMessage
}

func (r *fakeConversationRepo) Create(conv *models.Conversation) error {
	r.conversations = append(r.conversations, *conv)
	return nil
}

func (r *fakeConversationRepo) GetByID(id string) (*models.Conversation, error) {
	for i := range r.conversations {
		if r.conversations[i].ID == id {
			c := r.conversations[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) FindByParticipants(clientEmail, lawyerID string) (*models.Conversation, error) {
	for i := range r.conversations {
		if r.conversations[i].ClientEmail == clientEmail && r.conversations[i].LawyerID == lawyerID {
			c := r.conversations[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *fakeConversationRepo) ListForClient(clientEmail string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range r.conversations {
		if c.ClientEmail == clientEmail {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConversationRepo) ListForLawyer(lawyerID string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range r.conversations {
		if c.LawyerID == lawyerID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakeConversationRepo) AppendMessage(msg *models.ChatMessage) error {
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeConversationRepo) Messages(conversationID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeLawyerRepo struct {
	lawyers []models.Lawyer
}

func (r *fakeLawyerRepo) GetByID(id string) (*models.Lawyer, error) {
	for i := range r.lawyers {
		if r.lawyers[i].ID == id {
			l := r.lawyers[i]
			return &l, nil
		}
	}
	return nil, nil
}

func (r *fakeLawyerRepo) GetByEmail(email string) (*models.Lawyer, error) {
	for i := range r.lawyers {
		if r.lawyers[i].Email == email {
			l := r.lawyers[i]
			return &l, nil
		}
	}
	return nil, nil
}

func (r *fakeLawyerRepo) Search(query lawyerRepo.DirectoryQuery) ([]models.Lawyer, error) {
	return r.lawyers, nil
}

func (r *fakeLawyerRepo) Count() (int64, error) {
	return int64(len(r.lawyers)), nil
}

func (r *fakeLawyerRepo) CreateMany(lawyers []models.Lawyer) error {
	r.lawyers = append(r.lawyers, lawyers...)
	return nil
}

func newTestService() (*DefaultMessagingService, *fakeConversationRepo) {
	convs := &fakeConversationRepo{}
	svc := &DefaultMessagingService{
		Repo: convs,
		LawyerRepo: &fakeLawyerRepo{lawyers: []models.Lawyer{
			{ID: "lw-001", Name: "Ayesha Siddiqui", Email: "ayesha.siddiqui@chambers.pk"},
		}},
	}
	return svc, convs
}

func TestStartConversationCreatesOnce(t *testing.T) {
	svc, _ := newTestService()

	first, err := svc.StartConversation("ali@example.com", "lw-001")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := svc.StartConversation("ali@example.com", "lw-001")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestStartConversationUnknownLawyer(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.StartConversation("ali@example.com", "lw-999")
	assert.Error(t, err)
}

func clientRec() *models.SessionRecord {
	return &models.SessionRecord{Email: "ali@example.com", Role: models.RoleClient}
}

func lawyerRec() *models.SessionRecord {
	return &models.SessionRecord{Email: "ayesha.siddiqui@chambers.pk", Role: models.RoleLawyer}
}

func TestSendMessageValidation(t *testing.T) {
	svc, _ := newTestService()
	conv, err := svc.StartConversation("ali@example.com", "lw-001")
	require.NoError(t, err)

	_, err = svc.SendMessage(clientRec(), conv.ID, "")
	assert.Error(t, err)

	_, err = svc.SendMessage(clientRec(), "missing", "hello")
	assert.Error(t, err)

	_, err = svc.SendMessage(nil, conv.ID, "hello")
	assert.Error(t, err)
}

func TestSendAndListMessages(t *testing.T) {
	svc, _ := newTestService()
	conv, err := svc.StartConversation("ali@example.com", "lw-001")
	require.NoError(t, err)

	_, err = svc.SendMessage(clientRec(), conv.ID, "Salam, I need advice on a tenancy dispute.")
	require.NoError(t, err)
	_, err = svc.SendMessage(lawyerRec(), conv.ID, "Salam, please share the tenancy agreement.")
	require.NoError(t, err)

	msgs, err := svc.Messages(clientRec(), conv.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, models.SenderClient, msgs[0].Sender)
	assert.Equal(t, models.SenderLawyer, msgs[1].Sender)

	msgs, err = svc.Messages(lawyerRec(), conv.ID)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}

func TestConversationScopedToParticipants(t *testing.T) {
	svc, _ := newTestService()
	conv, err := svc.StartConversation("ali@example.com", "lw-001")
	require.NoError(t, err)
	_, err = svc.SendMessage(clientRec(), conv.ID, "Salam")
	require.NoError(t, err)

	stranger := &models.SessionRecord{Email: "zara@example.com", Role: models.RoleClient}
	otherLawyer := &models.SessionRecord{Email: "other.lawyer@chambers.pk", Role: models.RoleLawyer}

	_, err = svc.SendMessage(stranger, conv.ID, "let me in")
	assert.Error(t, err)
	_, err = svc.SendMessage(otherLawyer, conv.ID, "let me in")
	assert.Error(t, err)

	_, err = svc.Messages(stranger, conv.ID)
	assert.Error(t, err)
	_, err = svc.Messages(otherLawyer, conv.ID)
	assert.Error(t, err)
	_, err = svc.Messages(nil, conv.ID)
	assert.Error(t, err)
}

func TestConversationsByRole(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.StartConversation("ali@example.com", "lw-001")
	require.NoError(t, err)

	clientConvs, err := svc.Conversations(&models.SessionRecord{
		Email: "ali@example.com", Role: models.RoleClient,
	})
	require.NoError(t, err)
	assert.Len(t, clientConvs, 1)

	lawyerConvs, err := svc.Conversations(&models.SessionRecord{
		Email: "ayesha.siddiqui@chambers.pk", Role: models.RoleLawyer,
	})
	require.NoError(t, err)
	assert.Len(t, lawyerConvs, 1)

	_, err = svc.Conversations(nil)
	assert.Error(t, err)
}
