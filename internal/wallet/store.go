package wallet

import (
	"bytes"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/AlexZinkM/midnightctl/internal/model"
)

const storeSchemaText = `{
  "type": "object",
  "required": ["version", "wallets"],
  "properties": {
    "version": {"type": "integer", "minimum": 1},
    "defaultWallet": {"type": "string"},
    "wallets": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["name", "network", "addresses"],
        "anyOf": [{"required": ["seed"]}, {"required": ["sealedSeed"]}],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "createdAt": {"type": "string"},
          "network": {"type": "string", "minLength": 1},
          "seed": {"type": "string", "pattern": "^[0-9a-f]{64}$"},
          "sealedSeed": {
            "type": "object",
            "required": ["salt", "nonce", "cipherText"]
          },
          "addresses": {
            "type": "object",
            "required": ["unshielded"],
            "properties": {
              "unshielded": {"type": "string", "minLength": 1},
              "shielded": {"type": "string"},
              "dust": {"type": "string"}
            }
          }
        }
      }
    }
  }
}`

var storeSchema = jsonschema.MustCompileString("wallets.schema.json", storeSchemaText)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// storeState is one read-modify-write cycle of the wallets file.
type storeState struct {
	file    *model.WalletStoreFile
	corrupt bool
}

func emptyStore() *model.WalletStoreFile {
	return &model.WalletStoreFile{
		Version: model.WalletStoreVersion,
		Wallets: map[string]*model.StoredWallet{},
	}
}

// load reads the wallets file. A missing file is an empty store; a file
// that cannot be read or parsed degrades to an empty store with a warning.
// Problems found in a file are reported once until its content changes.
func (m *Manager) load() *storeState {
	data, err := afero.ReadFile(m.fs, m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &storeState{file: emptyStore()}
	}
	if err != nil {
		m.logger.Warn("wallet store unreadable, using empty store", zap.String("path", m.path), zap.Error(err))
		return &storeState{file: emptyStore(), corrupt: true}
	}

	logger := m.logger
	if !m.firstRead(data) {
		logger = zap.NewNop()
	}

	file, err := decodeStore(data)
	if err != nil {
		logger.Warn("wallet store corrupt, using empty store", zap.String("path", m.path), zap.Error(err))
		return &storeState{file: emptyStore(), corrupt: true}
	}

	if file.Version != model.WalletStoreVersion {
		logger.Warn("wallet store version mismatch",
			zap.Int("version", file.Version), zap.Int("expected", model.WalletStoreVersion))
	}
	for name, w := range file.Wallets {
		if w.Name != name {
			logger.Warn("wallet name does not match its key", zap.String("key", name), zap.String("name", w.Name))
			w.Name = name
		}
	}
	if file.DefaultWallet != "" && file.Wallets[file.DefaultWallet] == nil {
		logger.Warn("default wallet missing from store", zap.String("default", file.DefaultWallet))
		file.DefaultWallet = ""
	}
	return &storeState{file: file}
}

// firstRead reports whether data differs from the file content seen by the
// previous load.
func (m *Manager) firstRead(data []byte) bool {
	sum := sha256.Sum256(data)
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seen && m.lastSum == sum {
		return false
	}
	m.seen, m.lastSum = true, sum
	return true
}

func decodeStore(data []byte) (*model.WalletStoreFile, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse wallet store: %w", err)
	}
	if err := storeSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("wallet store does not match schema: %w", err)
	}

	var file model.WalletStoreFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal wallet store: %w", err)
	}
	if file.Wallets == nil {
		file.Wallets = map[string]*model.StoredWallet{}
	}
	return &file, nil
}

// save writes the store through a temp file and rename so a crash never
// leaves a half written wallets file. A corrupt file found by load is kept
// next to the new one.
func (m *Manager) save(st *storeState) error {
	dir := filepath.Dir(m.path)
	if err := m.fs.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create wallet directory: %w", err)
	}

	if st.corrupt {
		backup := m.path + ".corrupt"
		if err := m.fs.Rename(m.path, backup); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to back up corrupt wallet store: %w", err)
		}
		m.logger.Warn("corrupt wallet store moved aside", zap.String("backup", backup))
		st.corrupt = false
	}

	st.file.Version = model.WalletStoreVersion
	data, err := json.MarshalIndent(st.file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal wallet store: %w", err)
	}

	tmp, err := afero.TempFile(m.fs, dir, walletsFile+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer m.fs.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write wallet store: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync wallet store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close wallet store: %w", err)
	}
	if err := m.fs.Chmod(tmpName, 0o600); err != nil && !errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("failed to set wallet store permissions: %w", err)
	}
	if err := m.fs.Rename(tmpName, m.path); err != nil {
		return fmt.Errorf("failed to replace wallet store: %w", err)
	}
	return nil
}
