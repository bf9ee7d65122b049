package services

import (
	"CourseCatalog/models"
	"CourseCatalog/repositories"
	"fmt"
	"sync"
)

// LocaleService serves translated UI strings. Lookups are cached per
// language; admin writes invalidate the cache.
type LocaleService struct {
	MessageRepo     repositories.MessageRepository
	Languages       []string
	DefaultLanguage string
	messageCache    map[string]map[string]string
	mutex           sync.RWMutex
}

func NewLocaleService(messageRepo repositories.MessageRepository, languages []string, defaultLanguage string) *LocaleService {
	return &LocaleService{
		MessageRepo:     messageRepo,
		Languages:       languages,
		DefaultLanguage: defaultLanguage,
		messageCache:    make(map[string]map[string]string),
	}
}

// GetAllMessages returns the key/value map for lang. Keys missing in lang
// fall back to the default language.
func (s *LocaleService) GetAllMessages(lang string) (map[string]string, error) {
	s.mutex.RLock()
	if cached, exists := s.messageCache[lang]; exists {
		s.mutex.RUnlock()
		return cached, nil
	}
	s.mutex.RUnlock()

	result := make(map[string]string)

	if lang != s.DefaultLanguage {
		defaults, err := s.MessageRepo.FindByLanguage(s.DefaultLanguage)
		if err != nil {
			return nil, err
		}
		for _, m := range defaults {
			result[m.Key] = m.Value
		}
	}

	messages, err := s.MessageRepo.FindByLanguage(lang)
	if err != nil {
		return nil, err
	}
	for _, m := range messages {
		result[m.Key] = m.Value
	}

	s.mutex.Lock()
	s.messageCache[lang] = result
	s.mutex.Unlock()

	return result, nil
}

func (s *LocaleService) UpsertMessage(key, lang, value string) (models.Message, error) {
	if key == "" {
		return models.Message{}, fmt.Errorf("%w: key is required", ErrInvalidInput)
	}
	if !s.isSupportedLanguage(lang) {
		return models.Message{}, fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, lang)
	}

	message, err := s.MessageRepo.FindByKey(key, lang)
	if err != nil {
		message = models.Message{Key: key, LanguageCode: lang}
	}
	message.Value = value

	if err := s.MessageRepo.Save(&message); err != nil {
		return models.Message{}, err
	}

	s.invalidate(lang)
	return message, nil
}

func (s *LocaleService) DeleteMessage(key, lang string) error {
	if !s.isSupportedLanguage(lang) {
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidInput, lang)
	}
	if _, err := s.MessageRepo.FindByKey(key, lang); err != nil {
		return err
	}
	if err := s.MessageRepo.Delete(key, lang); err != nil {
		return err
	}

	s.invalidate(lang)
	return nil
}

func (s *LocaleService) isSupportedLanguage(code string) bool {
	for _, lang := range s.Languages {
		if lang == code {
			return true
		}
	}
	return false
}

// invalidate drops the cache for lang. A default-language write also feeds
// fallbacks in every other language, so the whole cache goes.
func (s *LocaleService) invalidate(lang string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if lang == s.DefaultLanguage {
		s.messageCache = make(map[string]map[string]string)
		return
	}
	delete(s.messageCache, lang)
}
