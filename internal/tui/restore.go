// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-seed-keeper/models"
)

// maxRestoreItems caps the restore list; the listing is newest first so the
// cap only hides old backups.
const maxRestoreItems = 50

type restoreModel struct {
	items   []models.SeedBackup
	idx     int
	loading bool
	err     error
}

func (m restoreModel) current() (models.SeedBackup, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.SeedBackup{}, false
	}
	return m.items[m.idx], true
}

func (m *restoreModel) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.idx = min(max(m.idx+delta, 0), len(m.items)-1)
}

func (m restoreModel) View(spin string) string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(spin)
		b.WriteString(" Загрузка...")
	case m.err != nil:
		b.WriteString(errorStyle.Render("Ошибка: " + humanizeServerUnavailableError(m.err)))
	case len(m.items) == 0:
		b.WriteString("Нет резервных копий")
	default:
		for i, item := range m.items {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			fmt.Fprintf(&b, "%s%-20s %-10s %s\n", cursor, fitText(valueOrNA(item.Name), 20), valueOrNA(item.Language), formatCreated(item))
		}
		if item, ok := m.current(); ok {
			fmt.Fprintf(&b, "\nФраза: %s", maskPhrase(item.Phrase))
		}
	}

	return renderPage("ВОССТАНОВЛЕНИЕ", b.String(), "↑/↓: выбор  c: копировать фразу  esc: назад")
}

func formatCreated(item models.SeedBackup) string {
	if item.CreatedAt.IsZero() {
		return "-"
	}
	return item.CreatedAt.Local().Format("2006-01-02 15:04")
}

// maskPhrase keeps the first and last word and hides the rest.
func maskPhrase(phrase string) string {
	words := strings.Fields(phrase)
	switch len(words) {
	case 0:
		return "-"
	case 1, 2:
		return strings.Repeat("*** ", len(words)-1) + "***"
	}
	masked := make([]string, len(words))
	for i := range words {
		masked[i] = "***"
	}
	masked[0] = words[0]
	masked[len(words)-1] = words[len(words)-1]
	return fmt.Sprintf("%s (%d слов)", strings.Join(masked, " "), len(words))
}
