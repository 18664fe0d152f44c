// Package match реализует приближённое сопоставление имён сотрудников.
package match

import (
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/leave-manager-api/internal/domain"
)

// DefaultThreshold - минимальная схожесть, при которой имя считается похожим
const DefaultThreshold = 0.7

// Match - кандидат с оценкой схожести в диапазоне [0, 1]
type Match struct {
	Employee domain.Employee
	Score    float64
}

// RankSimilar возвращает сотрудников, чьё имя похоже на запрос не меньше
// чем на threshold, отсортированных по убыванию схожести. Точные совпадения
// не исключаются. Чистая функция без побочных эффектов.
func RankSimilar(name string, candidates []domain.Employee, threshold float64) []Match {
	metric := metrics.NewJaroWinkler()
	query := strings.ToLower(strings.TrimSpace(name))

	var matches []Match
	for _, emp := range candidates {
		score := strutil.Similarity(query, strings.ToLower(emp.Name), metric)
		if score >= threshold {
			matches = append(matches, Match{Employee: emp, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
