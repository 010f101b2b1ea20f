package domain

import (
	"fmt"
	"strings"
	"time"
)

// activeTagIDsExpr collects the ids of an article's active tags, with
// soft-deleted associations filtered out before any set comparison.
// Articles without tags get an empty array so they never match an
// include clause and always pass an exclude clause.
const activeTagIDsExpr = `COALESCE((SELECT array_agg(at.tag_id) FROM article_tags at WHERE at.article_id = a.id AND at.tagging_reason <> 'DELETED'), '{}'::uuid[])`

// Predicate is a compiled boolean filter over the articles table
// (aliased "a"). Conditions carry `?` placeholders that are rewritten
// to positional arguments at render time, so the same predicate can be
// embedded in a WHERE clause or in a FILTER branch of a conditional
// aggregate.
type Predicate struct {
	conds []string
	args  []any
}

// And appends a conjunct. The number of `?` in cond must match args.
func (p *Predicate) And(cond string, args ...any) {
	p.conds = append(p.conds, cond)
	p.args = append(p.args, args...)
}

// IsEmpty reports whether no clause was compiled.
func (p *Predicate) IsEmpty() bool {
	return len(p.conds) == 0
}

// SQL renders the predicate with placeholders numbered from start and
// returns the positional arguments in matching order. An empty
// predicate renders as TRUE.
func (p *Predicate) SQL(start int) (string, []any) {
	if len(p.conds) == 0 {
		return "TRUE", nil
	}

	joined := strings.Join(p.conds, " AND ")
	var b strings.Builder
	n := start
	for _, r := range joined {
		if r == '?' {
			fmt.Fprintf(&b, "$%d", n)
			n++
			continue
		}
		b.WriteRune(r)
	}

	return b.String(), p.args
}

// CompilePredicate translates a reading list's persisted criteria into
// a predicate, evaluated against now. Compilation is pure: no state is
// read beyond the arguments.
func CompilePredicate(readingList *ReadingList, now time.Time) *Predicate {
	p := &Predicate{}

	switch readingList.ReadStatus {
	case ReadStatusAll:
	case ReadStatusOnlyRead:
		p.And("a.read_at IS NOT NULL")
	case ReadStatusOnlyUnread:
		p.And("a.read_at IS NULL")
	default:
		panic(fmt.Sprintf("unknown read status %q", readingList.ReadStatus))
	}

	switch readingList.FavoriteStatus {
	case FavoriteStatusAll:
	case FavoriteStatusOnlyFavorite:
		p.And("a.is_favorite = TRUE")
	case FavoriteStatusOnlyNonFavorite:
		p.And("a.is_favorite = FALSE")
	default:
		panic(fmt.Sprintf("unknown favorite status %q", readingList.FavoriteStatus))
	}

	switch readingList.ForLaterStatus {
	case ForLaterStatusAll:
	case ForLaterStatusOnlyForLater:
		p.And("a.is_for_later = TRUE")
	case ForLaterStatusOnlyNotLater:
		p.And("a.is_for_later = FALSE")
	default:
		panic(fmt.Sprintf("unknown for later status %q", readingList.ForLaterStatus))
	}

	if cutoff, ok := readingList.MaxAgeCutoff(now); ok {
		p.And("a.published_at > ?", cutoff)
	}

	switch readingList.ArticlesReadingTimeOperator {
	case ReadingTimeOperatorUnset:
	case ReadingTimeOperatorMoreThan:
		// Inclusive at the boundary despite the operator's name.
		p.And("a.reading_time >= ?", readingList.ArticlesReadingTime)
	case ReadingTimeOperatorLessThan:
		p.And("a.reading_time <= ?", readingList.ArticlesReadingTime)
	default:
		panic(fmt.Sprintf("unknown reading time operator %q", readingList.ArticlesReadingTimeOperator))
	}

	compileTagClauses(p, readingList)

	return p
}

func compileTagClauses(p *Predicate, readingList *ReadingList) {
	if included := readingList.IncludedTagIDs(); len(included) > 0 {
		p.And(activeTagIDsExpr+" "+tagSetOperator(readingList.IncludeTagOperator)+" ?", included)
	}
	if excluded := readingList.ExcludedTagIDs(); len(excluded) > 0 {
		p.And("NOT ("+activeTagIDsExpr+" "+tagSetOperator(readingList.ExcludeTagOperator)+" ?)", excluded)
	}
}

// tagSetOperator maps ALL to array containment and ANY to overlap.
func tagSetOperator(operator TagOperator) string {
	switch operator {
	case TagOperatorAll:
		return "@>"
	case TagOperatorAny:
		return "&&"
	default:
		panic(fmt.Sprintf("unknown tag operator %q", operator))
	}
}

// ArticleOrderClause orders by updated_at falling back to
// published_at, nulls last in both directions, with the row id as a
// stable tie-break for deterministic pagination.
func ArticleOrderClause(direction OrderDirection) string {
	switch direction {
	case OrderDirectionAsc:
		return "COALESCE(a.updated_at, a.published_at) ASC NULLS LAST, a.id ASC"
	case OrderDirectionDesc, "":
		return "COALESCE(a.updated_at, a.published_at) DESC NULLS LAST, a.id ASC"
	default:
		panic(fmt.Sprintf("unknown order direction %q", direction))
	}
}
