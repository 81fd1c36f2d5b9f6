package repository

import (
	"os"
	"testing"

	"github.com/mogith007/skillswap/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitNop()
	os.Exit(m.Run())
}
