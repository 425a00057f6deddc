package locale

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menuboard/internal/schedule"
)

const germanPack = `
days: [Mo, Di, Mi, Do, Fr, Sa, So]
closed: Geschlossen
open: "Geöffnet"
closed_now: "Derzeit geschlossen; verfügbar %s"
`

func writePack(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writePack(t, t.TempDir(), "de.yaml", germanPack)

	labels, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, [7]string{"Mo", "Di", "Mi", "Do", "Fr", "Sa", "So"}, labels.Days)
	assert.Equal(t, "Geschlossen", labels.Closed)
	assert.Equal(t, "Derzeit geschlossen; verfügbar %s", labels.ClosedNow)
}

func TestLoadRejectsWrongDayCount(t *testing.T) {
	path := writePack(t, t.TempDir(), "bad.yaml", "days: [Mo, Di]\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "7 day abbreviations")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writePack(t, dir, "de.yaml", germanPack)
	writePack(t, dir, "notes.txt", "ignored")

	packs, err := LoadDir(dir)
	require.NoError(t, err)

	assert.Contains(t, packs, "en")
	assert.Contains(t, packs, "ru")
	assert.Contains(t, packs, "de")
	assert.Equal(t, "Geschlossen", packs["de"].Closed)
}

func TestLoadDirMissingIsNotFatal(t *testing.T) {
	packs, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Len(t, packs, 2)
}

func TestGetFallsBackToEnglish(t *testing.T) {
	packs := map[string]schedule.Labels{"ru": Russian()}

	assert.Equal(t, Russian(), Get(packs, "ru"))
	assert.Equal(t, English(), Get(packs, "fi"))
}

func TestBuiltinsRenderWithFormatter(t *testing.T) {
	w := schedule.Weekly{
		schedule.Monday: {Open: true, Slots: []schedule.Range{{
			From: schedule.MustClock("11:00"),
			To:   schedule.MustClock("15:00"),
		}}},
	}.Normalize()

	en := schedule.Format(w, English())
	assert.Equal(t, "Mon 11:00–15:00; Tue–Sun Closed", en)

	ru := schedule.Format(w, Russian())
	assert.Equal(t, "Пн 11:00–15:00; Вт–Вс Закрыто", ru)
}
