package facts

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/econectar/econectar-web/internal/media"
)

// FactGiver serves random "did you know" bee facts per language. Fact
// files live in the media store, one fact per line, one file per
// language (fileName pattern with '*' standing for the language code).
type FactGiver struct {
	library  *media.Library
	cache    map[string][]string
	langs    []string
	fileName string
	nlRe     *regexp.Regexp
	randGen  *rand.Rand
}

func NewFactGiver(library *media.Library, fileName string, langs []string) (*FactGiver, error) {
	factGiver := &FactGiver{
		library:  library,
		cache:    make(map[string][]string, len(langs)),
		langs:    langs,
		fileName: fileName,
		nlRe:     regexp.MustCompile(`\r?\n`),
		randGen:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if err := factGiver.initCache(); err != nil {
		return nil, fmt.Errorf("fail to init cache for a new fact giver: %w", err)
	}

	return factGiver, nil
}

// Give picks three distinct facts for the language. Languages with
// fewer than three facts repeat the tail.
func (g *FactGiver) Give(lang string) [3]string {
	facts := g.cache[lang]
	if len(facts) == 0 {
		return [3]string{}
	}

	factSlice := make([]string, len(facts))
	copy(factSlice, facts)
	g.randGen.Shuffle(len(factSlice), func(i, j int) {
		factSlice[i], factSlice[j] = factSlice[j], factSlice[i]
	})

	var picked [3]string
	for i := range picked {
		picked[i] = factSlice[i%len(factSlice)]
	}
	return picked
}

func (g *FactGiver) initCache() error {
	for _, lang := range g.langs {
		localFacts := strings.Replace(g.fileName, "*", lang, 1)
		factsContentBytes, err := g.library.ReadFile(localFacts)
		if err != nil {
			return fmt.Errorf("fail to read '%s' facts file: %w", lang, err)
		}
		lines := g.nlRe.Split(string(factsContentBytes), -1)
		facts := make([]string, 0, len(lines))
		for _, line := range lines {
			if strings.TrimSpace(line) != "" {
				facts = append(facts, line)
			}
		}
		g.cache[lang] = facts
	}
	return nil
}
