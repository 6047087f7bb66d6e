package stores

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"fruit-order-service/models"
)

const guestEmail = "guest@fruitwala.com"

// AuthStore 单例会话：同一时刻最多一个已登录用户
type AuthStore struct {
	mu    sync.RWMutex
	user  *models.User
	blobs BlobStore
}

func NewAuthStore(blobs BlobStore) *AuthStore {
	s := &AuthStore{blobs: blobs}

	if data := loadBlob(blobs, AuthStorageKey); data != nil {
		var user models.User
		if err := json.Unmarshal(data, &user); err != nil {
			log.Warn().Err(err).Msg("Discarding malformed auth blob")
		} else if user.ID != "" {
			s.user = &user
		}
	}
	return s
}

// Login 没有后端，只要邮箱和密码非空就放行
func (s *AuthStore) Login(email, password string) bool {
	if email == "" || password == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &models.User{
		ID:      fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Email:   email,
		IsGuest: false,
	}
	s.persistLocked()
	return true
}

func (s *AuthStore) LoginAsGuest() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &models.User{
		ID:      fmt.Sprintf("guest_%d", time.Now().UnixMilli()),
		Email:   guestEmail,
		IsGuest: true,
	}
	s.persistLocked()
	return *s.user
}

func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	deleteAsync(s.blobs, AuthStorageKey)
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

func (s *AuthStore) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *AuthStore) persistLocked() {
	data, err := json.Marshal(s.user)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal auth state")
		return
	}
	persistAsync(s.blobs, AuthStorageKey, data)
}
