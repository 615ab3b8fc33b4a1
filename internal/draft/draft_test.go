package draft

import (
	"context"
	"testing"

	"github.com/AdamBeresnev/federation-brackets/internal/bracket"
	"github.com/AdamBeresnev/federation-brackets/internal/federation"
	"github.com/alexedwards/scs/v2"
	"github.com/alexedwards/scs/v2/memstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionContext(t *testing.T, sessions *scs.SessionManager) context.Context {
	t.Helper()
	ctx, err := sessions.Load(context.Background(), "")
	require.NoError(t, err)
	return ctx
}

func TestStore(t *testing.T) {
	sessions := scs.New()
	sessions.Store = memstore.New()
	drafts := New(sessions)
	ctx := sessionContext(t, sessions)

	championshipID := uuid.NewString()
	_, err := drafts.Get(ctx, championshipID, "classification_a")
	assert.ErrorIs(t, err, ErrNoDraft)

	rounds, err := bracket.Build([]federation.Registration{
		{ID: uuid.New(), FullName: "A"},
		{ID: uuid.New(), FullName: "B"},
		{ID: uuid.New(), FullName: "C"},
	})
	require.NoError(t, err)

	require.NoError(t, drafts.Put(ctx, championshipID, "classification_a", rounds))

	got, err := drafts.Get(ctx, championshipID, "classification_a")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, rounds[0][0].ID, got[0][0].ID)

	// Drafts are per championship and category
	_, err = drafts.Get(ctx, championshipID, "classification_b")
	assert.ErrorIs(t, err, ErrNoDraft)
	_, err = drafts.Get(ctx, uuid.NewString(), "classification_a")
	assert.ErrorIs(t, err, ErrNoDraft)

	drafts.Discard(ctx, championshipID, "classification_a")
	_, err = drafts.Get(ctx, championshipID, "classification_a")
	assert.ErrorIs(t, err, ErrNoDraft)
}
