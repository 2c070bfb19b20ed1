package explorer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysmood/gson"
)

func TestDiscovery_FiltersInvisible(t *testing.T) {
	session := tabsSession()

	affordances, err := NewDiscovery(session).Discover(context.Background())
	require.NoError(t, err)
	require.Len(t, affordances, 3)

	texts := []string{}
	for i, a := range affordances {
		assert.True(t, a.Visible)
		assert.Equal(t, i, a.Order)
		texts = append(texts, a.Text)
	}
	assert.Equal(t, []string{"Overview", "Financials", "News"}, texts)
}

func TestDiscovery_Fields(t *testing.T) {
	affordances, err := NewDiscovery(tabsSession()).Discover(context.Background())
	require.NoError(t, err)

	first := affordances[0]
	assert.Equal(t, "button", first.TagName)
	assert.Equal(t, []string{"tab", "active"}, first.ClassList)
	assert.Equal(t, "tab-overview", first.ID)

	news := affordances[2]
	assert.Equal(t, "a", news.TagName)
	assert.Empty(t, news.ClassList)
	assert.Empty(t, news.ID)
}

func TestDiscovery_Idempotent(t *testing.T) {
	d := NewDiscovery(tabsSession())

	first, err := d.Discover(context.Background())
	require.NoError(t, err)
	second, err := d.Discover(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDiscovery_Empty(t *testing.T) {
	session := &fakeSession{discovery: `[]`}

	affordances, err := NewDiscovery(session).Discover(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, affordances)
	assert.Empty(t, affordances)
}

func TestDiscovery_EvaluationFailure(t *testing.T) {
	cause := errors.New("execution context was destroyed")
	session := &fakeSession{evalErr: cause}

	_, err := NewDiscovery(session).Discover(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDiscovery)
	assert.ErrorIs(t, err, cause)
}

func TestDecodeAffordances_UnexpectedShape(t *testing.T) {
	_, err := DecodeAffordances(gson.NewFrom(`{"text": "not a list"}`))
	assert.ErrorIs(t, err, ErrDiscovery)
}

func TestDecodeAffordances_Null(t *testing.T) {
	affordances, err := DecodeAffordances(gson.NewFrom(`null`))
	require.NoError(t, err)
	assert.Empty(t, affordances)
}

func TestDecodeAffordances_OnlyVisible(t *testing.T) {
	raw := gson.NewFrom(`[
		{"text": "a", "tagName": "button", "classList": [], "id": "", "visible": false},
		{"text": "b", "tagName": "button", "classList": [], "id": "", "visible": false}
	]`)

	affordances, err := DecodeAffordances(raw)
	require.NoError(t, err)
	assert.Empty(t, affordances)
}
