package llc

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"

	"lumen/common"
	"lumen/report"

	"github.com/llir/llvm/ir"
)

// This package drives the external LLVM static compiler (`llc`): the engine
// that performs instruction selection, register allocation, and object-file
// emission from the lowered LLVM module.  The backend itself stops at a
// well-formed module; everything below that line belongs to llc.

// FindLLC locates the llc binary: the override environment variable wins,
// otherwise the system path is searched.
func FindLLC() (string, error) {
	if llcPath, ok := os.LookupEnv(common.LLCPathEnvVar); ok {
		return llcPath, nil
	}

	llcPath, err := exec.LookPath("llc")
	if err != nil {
		return "", report.Raise(report.KindCodegen, "unable to locate llc: %s", err.Error())
	}

	return llcPath, nil
}

// CompileModule compiles an LLVM module to a relocatable object file at the
// given path with the given optimization level.  The module text is written
// to a temporary file, llc emits the object next to the final path, and the
// finished object is renamed into place: a failed compile never leaves a
// truncated or half-written artifact at the target.
func CompileModule(llcPath string, mod *ir.Module, objFilePath string, opt OptLevel) error {
	tempDir, err := os.MkdirTemp("", "lumen")
	if err != nil {
		return report.Raise(report.KindIO, "failed to create temporary directory: %s", err.Error())
	}
	defer os.RemoveAll(tempDir)

	// write the LLVM module to a text file
	modFilePath := filepath.Join(tempDir, "module.ll")
	if err := os.WriteFile(modFilePath, []byte(mod.String()), 0644); err != nil {
		return report.Raise(report.KindIO, "failed to write module file: %s", err.Error())
	}

	// emit the object into the destination directory so the final rename
	// never crosses a filesystem boundary
	tempObj, err := os.CreateTemp(filepath.Dir(objFilePath), ".lumen-*.o")
	if err != nil {
		return report.Raise(report.KindIO, "failed to create object file: %s", err.Error())
	}
	tempObjPath := tempObj.Name()
	tempObj.Close()

	llc := exec.Command(llcPath, "-filetype", "obj", opt.flag(), "-o", tempObjPath, modFilePath)
	stderrBuff := bytes.Buffer{}
	llc.Stderr = &stderrBuff

	if err := llc.Run(); err != nil {
		os.Remove(tempObjPath)

		msg := stderrBuff.String()
		if msg == "" {
			msg = err.Error()
		}

		return report.Raise(report.KindCodegen, "llc failed: %s", msg)
	}

	if err := os.Rename(tempObjPath, objFilePath); err != nil {
		os.Remove(tempObjPath)
		return report.Raise(report.KindIO, "failed to write output to `%s`: %s", objFilePath, err.Error())
	}

	return nil
}
