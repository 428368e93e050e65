package preview

import (
	"fmt"
	"mime/multipart"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// OptimizePdf validates and rewrites the uploaded PDF proof into outFile.
// A file pdfcpu cannot parse is rejected here, before anything is stored.
func OptimizePdf(fileHeader multipart.FileHeader, outFile string) error {
	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := api.Optimize(src, out, nil); err != nil {
		return fmt.Errorf("failed to optimize pdf: %w", err)
	}

	return nil
}

func GetPageCount(path string) (int, error) {
	count, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return count, nil
}
