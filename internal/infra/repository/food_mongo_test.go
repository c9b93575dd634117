package repository

import (
	"testing"

	repo "luxebite/internal/repository"

	"github.com/stretchr/testify/assert"
)

func TestSearchPattern_CaseInsensitive(t *testing.T) {
	p := SearchPattern("ramen")

	assert.Equal(t, "ramen", p.Pattern)
	assert.Equal(t, "i", p.Options)
}

func TestSearchPattern_TrimsWhitespace(t *testing.T) {
	p := SearchPattern("  spicy ram  ")

	assert.Equal(t, `spicy ram`, p.Pattern)
}

func TestSearchPattern_EscapesMetacharacters(t *testing.T) {
	//入力がそのまま正規表現にならないこと
	p := SearchPattern(".*")
	assert.Equal(t, `\.\*`, p.Pattern)

	p = SearchPattern("a+b(c)|d")
	assert.Equal(t, `a\+b\(c\)\|d`, p.Pattern)
}

func TestBuildFoodFilter_Empty(t *testing.T) {
	filter := buildFoodFilter(repo.FoodListQuery{})

	//条件なしは全件一致
	assert.Empty(t, filter)
}

func TestBuildFoodFilter_SearchOnly(t *testing.T) {
	filter := buildFoodFilter(repo.FoodListQuery{Search: "Ramen"})

	assert.Len(t, filter, 1)
	assert.Contains(t, filter, "name")
}

func TestBuildFoodFilter_OwnerOnly(t *testing.T) {
	filter := buildFoodFilter(repo.FoodListQuery{OwnerEmail: "alice@x.com"})

	assert.Equal(t, "alice@x.com", filter["made_by.email"])
	assert.NotContains(t, filter, "name")
}

func TestBuildFoodFilter_ComposesWithAnd(t *testing.T) {
	//両方指定は同じフィルタ内に載る（bsonのトップレベルはAND）
	filter := buildFoodFilter(repo.FoodListQuery{Search: "ramen", OwnerEmail: "alice@x.com"})

	assert.Len(t, filter, 2)
	assert.Contains(t, filter, "name")
	assert.Equal(t, "alice@x.com", filter["made_by.email"])
}

func TestBuildFoodFilter_BlankSearchIgnored(t *testing.T) {
	filter := buildFoodFilter(repo.FoodListQuery{Search: "   "})

	assert.Empty(t, filter)
}
