// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-seed-keeper/models"
)

// describeState renders the state line shown on the status screen.
func describeState(s models.SyncState, now time.Time) string {
	switch s.Kind {
	case models.SyncStateInitializing:
		return "Инициализация"
	case models.SyncStateDisabled:
		return "Резервное копирование выключено"
	case models.SyncStateWaitingForInternet:
		return "Ожидание сети"
	case models.SyncStateWaitingForCredentials:
		return "Ожидание учётной записи"
	case models.SyncStateUploading:
		return "Загрузка фразы"
	case models.SyncStateDeleting:
		return "Удаление копии"
	case models.SyncStateSynced:
		return "Синхронизировано"
	case models.SyncStateWaitingBackoff:
		remaining := s.Remaining(now).Round(time.Second)
		return fmt.Sprintf("Повтор через %s (%s)", remaining, failureReason(s.Err))
	default:
		return s.String()
	}
}

func failureReason(err error) string {
	var failure *models.Failure
	if !errors.As(err, &failure) {
		if err == nil {
			return "ошибка"
		}
		return humanizeServerUnavailableError(err)
	}
	switch failure.Kind {
	case models.FailureNotAuthenticated:
		return "нет авторизации"
	case models.FailureRateLimited:
		return "превышен лимит запросов"
	case models.FailureCancelled:
		return "операция отменена"
	default:
		return humanizeServerUnavailableError(failure.Err)
	}
}

// isBusy reports whether the state shows a spinner.
func isBusy(s models.SyncState) bool {
	switch s.Kind {
	case models.SyncStateInitializing, models.SyncStateUploading, models.SyncStateDeleting:
		return true
	}
	return false
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Отсутствует сеть или Сервер недоступен"
	}

	return err.Error()
}
