package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
logLevel: 0
listen: ":3000"
defaultLanguage: pt
localePath: locales/
availableLanguages:
  - name: pt
    alt: "Português"
    locFile: pt.yaml
  - name: en
    alt: English
    locFile: en.yaml
media:
  storage:
    type: b2
    b2:
      bucketName: econectar-media
      keyID: ${ECONECTAR_B2_KEY_ID}
      applicationKey: secret
  publicBaseURL: https://media.econectar.example
  galleryPrefix: galleries/
  projectsPrefix: projects/
  factsFileName: facts_*.txt
  rescanCron: "*/15 * * * *"
gallery:
  transitionDuration: 300ms
  slideshowInterval: 5s
  loadTimeout: 10s
contact:
  db:
    type: sqlite3
    config:
      dsn: file:econectar.db
  rateLimitTTL: 1m
mail:
  mailHost: smtp.example.com
  publicName: Econectar
  mailAddress: contato@econectar.example
  username: contato
  password: hunter2
  salt: pepper
pageCacheTTL: 5m
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0o644))
	return path
}

func TestInitConfigParsesAndValidates(t *testing.T) {
	t.Setenv("ECONECTAR_B2_KEY_ID", "key-from-env")

	cfg, err := InitConfig(writeSample(t))
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Listen)
	assert.Equal(t, "pt", cfg.DefaultLanguage)
	assert.Len(t, cfg.AvailableLanguages, 2)
	assert.Equal(t, "b2", cfg.Media.Storage.Type)
	assert.Equal(t, "key-from-env", cfg.Media.Storage.B2.KeyID)
	assert.Equal(t, 300*time.Millisecond, cfg.Gallery.TransitionDuration.Std())
	assert.Equal(t, 5*time.Minute, cfg.PageCacheTTL.Std())
}

func TestInitConfigRejectsUnknownStorageType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	bad := []byte(`
logLevel: 0
listen: ":3000"
defaultLanguage: pt
localePath: locales/
availableLanguages:
  - name: pt
    locFile: pt.yaml
media:
  storage:
    type: ftp
  publicBaseURL: https://media.econectar.example
  factsFileName: facts_*.txt
  rescanCron: "*/15 * * * *"
contact:
  db:
    type: sqlite3
    config:
      dsn: file:econectar.db
mail:
  mailHost: smtp.example.com
  publicName: Econectar
  mailAddress: contato@econectar.example
  username: contato
  password: hunter2
  salt: pepper
`)
	require.NoError(t, os.WriteFile(path, bad, 0o644))

	_, err := InitConfig(path)
	assert.Error(t, err)
}
