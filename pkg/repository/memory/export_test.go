package memory

import "github.com/m-mizutani/livegit/pkg/domain/interfaces"

func SessionCountForTest(repo interfaces.SessionRepository) int {
	return repo.(*sessionRepository).count()
}
