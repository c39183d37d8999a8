package relation

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/N3moAhead/familytree/internal/metrics"
)

func TestQuery(t *testing.T) {
	r := sample(t)

	tests := []struct {
		kind Kind
		id   string
		want []string
	}{
		{Father, "Jata", []string{"Drita"}},
		{Father, "Shan", []string{}},
		{Mother, "Drita", []string{"Ambi"}},
		{Spouse, "Driya", []string{"Minu"}},
		{Spouse, "Vrita", []string{}},
		{Children, "Shan", []string{"Ish", "Chit", "Vich", "Satya"}},
		{Siblings, "Jata", []string{"Driya"}},
		{Uncles, "Jata", []string{"Vrita"}},
		{BrotherInLaws, "Jata", []string{"Minu"}},
		{GrandFathers, "Jata", []string{"Chit"}},
		{GrandChildren, "Shan", []string{"Vrita", "Drita"}},
		{Cousins, "Jata", []string{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.id, func(t *testing.T) {
			got, err := r.Query(tt.kind, tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestQueryUnknownRelation(t *testing.T) {
	_, err := sample(t).Query("second-cousins", "Jata")
	assert.ErrorIs(t, err, ErrUnknownRelation)
}

func TestQueryCountsByRelation(t *testing.T) {
	r := sample(t)
	counter := metrics.QueriesTotal.WithLabelValues(string(Cousins))
	before := testutil.ToFloat64(counter)

	_, err := r.Query(Cousins, "Jata")
	require.NoError(t, err)
	_, err = r.Query("second-cousins", "Jata")
	require.Error(t, err)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestEveryKindAnswers(t *testing.T) {
	r := sample(t)

	kinds := Kinds()
	assert.Len(t, kinds, 25)
	for _, k := range kinds {
		got, err := r.Query(k, "nobody")
		require.NoError(t, err, k)
		assert.NotNil(t, got, k)
		assert.Empty(t, got, k)
	}
}

func TestAll(t *testing.T) {
	items := sample(t).All("Jata")
	require.Len(t, items, len(Kinds()))

	assert.Equal(t, Father, items[0].Kind)
	assert.Equal(t, "Drita", items[0].Description())
	assert.Equal(t, "father Drita", items[0].FilterValue())

	for _, it := range items {
		if it.Kind == Cousins {
			assert.Equal(t, "none", it.Description())
		}
	}
}

func TestJoin(t *testing.T) {
	r := sample(t)
	assert.Equal(t, "Ish,Chit,Vich,Satya", Join(r.ChildrenOf("Shan")))
	assert.Equal(t, "", Join(r.ChildrenOf("Minu")))
}
