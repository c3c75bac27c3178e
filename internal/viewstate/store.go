package viewstate

import (
	"sync"

	"listing-view-service/internal/core/domain"

	"github.com/google/uuid"
)

// SyncState - состояние синхронизации избранного.
type SyncState string

const (
	SyncStateUnsynced SyncState = "unsynced"
	SyncStateSyncing  SyncState = "syncing"
	SyncStateSynced   SyncState = "synced"
)

// Store - единственный владелец рабочего состояния вида: рабочая копия
// списка объявлений и номер текущей страницы. Все обновления - замена
// среза целиком; элементы никогда не правятся на месте, поэтому
// конвейер вывода остается чистым и тестируемым отдельно от рендера.
type Store struct {
	mu sync.Mutex

	listings    []domain.Listing
	currentPage int

	syncState   SyncState
	currentUser uuid.UUID
	// generation защищает от гонки при смене пользователя: завершение
	// синхронизации с устаревшим номером поколения отбрасывается.
	generation uint64
}

func NewStore() *Store {
	return &Store{
		currentPage: 1,
		syncState:   SyncStateUnsynced,
	}
}

// ReplaceListings заменяет рабочую копию списка свежими данными каталога.
// Отметки Liked переносятся по ID со старой копии, чтобы обновление
// каталога не сбрасывало уже синхронизированное избранное.
func (s *Store) ReplaceListings(items []domain.Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()

	liked := make(map[int64]struct{}, len(s.listings))
	for _, l := range s.listings {
		if l.Liked {
			liked[l.ID] = struct{}{}
		}
	}

	next := make([]domain.Listing, len(items))
	copy(next, items)
	for i := range next {
		if _, ok := liked[next[i].ID]; ok {
			next[i].Liked = true
		}
	}
	s.listings = next
}

// Listings возвращает копию рабочего списка.
func (s *Store) Listings() []domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Listing, len(s.listings))
	copy(out, s.listings)
	return out
}

func (s *Store) CurrentPage() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentPage
}

func (s *Store) SetCurrentPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentPage = page
}

func (s *Store) SyncState() SyncState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncState
}

// NeedsSync сообщает, нужна ли синхронизация избранного для пользователя.
// Смена пользователя всегда требует новой синхронизации.
func (s *Store) NeedsSync(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentUser != userID || s.syncState != SyncStateSynced
}

// BeginSync переводит состояние в syncing и выдает номер поколения.
// Каждый вызов делает устаревшими все незавершенные синхронизации,
// поэтому ответ, пришедший после смены пользователя, влиться не сможет.
func (s *Store) BeginSync(userID uuid.UUID) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = userID
	s.generation++
	s.syncState = SyncStateSyncing
	return s.generation
}

// CompleteSync вливает полученный набор ID в рабочую копию: для
// совпавших ID выставляется Liked=true, остальные отметки не трогаются.
// Завершение с устаревшим поколением отбрасывается без изменений.
func (s *Store) CompleteSync(gen uint64, likedIDs []int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return false
	}

	likedSet := make(map[int64]struct{}, len(likedIDs))
	for _, id := range likedIDs {
		likedSet[id] = struct{}{}
	}

	next := make([]domain.Listing, len(s.listings))
	copy(next, s.listings)
	for i := range next {
		if _, ok := likedSet[next[i].ID]; ok {
			next[i].Liked = true
		}
	}

	s.listings = next
	s.syncState = SyncStateSynced
	return true
}

// FailSync возвращает актуальную синхронизацию в состояние unsynced.
// Устаревшее поколение игнорируется.
func (s *Store) FailSync(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		return
	}
	s.syncState = SyncStateUnsynced
}

// FlipLiked инвертирует отметку Liked у одного объявления.
// Возвращает новое значение и признак того, что объявление найдено.
func (s *Store) FlipLiked(listingID int64) (bool, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Listing, len(s.listings))
	copy(next, s.listings)
	for i := range next {
		if next[i].ID == listingID {
			next[i].Liked = !next[i].Liked
			s.listings = next
			return next[i].Liked, true
		}
	}
	return false, false
}
