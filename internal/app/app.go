package app

import (
	"fmt"
	"os"
	"path/filepath"

	"bankbook/internal/config"
	"bankbook/internal/service"
	"bankbook/internal/store"
)

type App struct {
	Service *service.BankService
	Store   *store.Store
}

// NewApp resolves the data file path, loads the ledger from it, and wires
// up the service. A corrupted data file fails here, before any command
// runs.
func NewApp(cfg *config.Config) (*App, error) {
	dataPath := cfg.Data.Path
	if dataPath == "" {
		appDir, err := getAppDataDir()
		if err != nil {
			return nil, err
		}
		dataPath = filepath.Join(appDir, "bank_data.txt")
	}

	st, err := store.NewStore(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize data store: %w", err)
	}

	l, err := st.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	return &App{
		Service: service.NewBankService(l, st),
		Store:   st,
	}, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bankbook"), nil
	}

	return filepath.Join(configDir, "bankbook"), nil
}
