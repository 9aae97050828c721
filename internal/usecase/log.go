package usecase

import "github.com/diazbsofia/homesolution/internal/domain"

func logInfo(l domain.Logger, projectID int, category, msg string) {
	if l != nil {
		l.Info(projectID, category, msg)
	}
}

// rejected logs err at warn level and returns it unchanged.
func rejected(l domain.Logger, projectID int, category string, err error) error {
	if l != nil {
		l.Warn(projectID, category, err.Error())
	}
	return err
}
