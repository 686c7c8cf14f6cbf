package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/depeter/scrubbar/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the artwork cache",
}

var cacheInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show where artwork is cached and how much space it uses",
	Args:  cobra.NoArgs,
	RunE:  runCacheInfo,
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete cached artwork",
	Args:  cobra.NoArgs,
	RunE:  runCacheClear,
}

func init() {
	cacheCmd.AddCommand(cacheInfoCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}

func openImageCache() (*cache.ImageCache, error) {
	return cache.NewImageCache(imageCacheDir(), nil)
}

func runCacheInfo(cmd *cobra.Command, args []string) error {
	images, err := openImageCache()
	if err != nil {
		return err
	}
	files, size, err := images.DiskUsage()
	if err != nil {
		return err
	}
	fmt.Printf("Path:  %s\n", images.CacheDir())
	fmt.Printf("Files: %d\n", files)
	fmt.Printf("Size:  %s\n", humanize.Bytes(uint64(size)))
	return nil
}

func runCacheClear(cmd *cobra.Command, args []string) error {
	images, err := openImageCache()
	if err != nil {
		return err
	}
	_, size, err := images.DiskUsage()
	if err != nil {
		return err
	}
	if err := images.ClearDisk(); err != nil {
		return fmt.Errorf("failed to clear %s: %w", images.CacheDir(), err)
	}
	fmt.Printf("Freed %s from %s\n", humanize.Bytes(uint64(size)), images.CacheDir())
	return nil
}
