package collector

import (
	"io"
	"os"
	"os/exec"
	"strings"
)

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// runCmdWithErr executes a command and returns output + error.
func runCmdWithErr(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).CombinedOutput()
	return string(out), err
}

// readLastLines reads the last n lines from a file, or "" on any failure.
func readLastLines(path string, n int) string {
	file, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return ""
	}
	filesize := stat.Size()

	// Read the last 50KB, which covers n lines easily for log files.
	const blockSize int64 = 50 * 1024

	startPos := filesize - blockSize
	if startPos < 0 {
		startPos = 0
	}

	if _, err := file.Seek(startPos, 0); err != nil {
		return ""
	}

	buf := make([]byte, filesize-startPos)
	if _, err := io.ReadFull(file, buf); err != nil {
		return ""
	}

	lines := strings.Split(string(buf), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
