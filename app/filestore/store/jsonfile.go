package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Contact 文件存储中的留言记录
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// 磁盘上的文档结构：单个 JSON 文件包一个留言数组
type document struct {
	Contacts []Contact `json:"contacts"`
}

// JSONFile 单文件留言存储，所有读写持锁串行执行
type JSONFile struct {
	mu   sync.Mutex
	path string
}

func NewJSONFile(path string) (*JSONFile, error) {
	s := &JSONFile{path: path}

	// 数据文件不存在时先写入空文档
	if _, err := os.Stat(path); err == nil {
		// 已有数据文件
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	} else if err = s.save(&document{Contacts: []Contact{}}); err != nil {
		return nil, fmt.Errorf("failed to initialize data file: %w", err)
	}

	return s, nil
}

func (s *JSONFile) load() (*document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	return doc, nil
}

func (s *JSONFile) save(doc *document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data file: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}

	return nil
}

// Create 追加一条留言并落盘
func (s *JSONFile) Create(name, email, subject, message string) (*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	contact := Contact{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now(),
	}
	doc.Contacts = append(doc.Contacts, contact)

	if err := s.save(doc); err != nil {
		return nil, err
	}

	return &contact, nil
}

// List 返回全部留言，按创建时间倒序
func (s *JSONFile) List() ([]Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	contacts := doc.Contacts
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
	})

	return contacts, nil
}
