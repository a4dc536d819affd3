package refine

import (
	"path/filepath"

	"github.com/dhamidi/ashe/ast"
	"github.com/dhamidi/ashe/checker"
	"github.com/dhamidi/ashe/config"
	"github.com/dhamidi/ashe/errs"
	"github.com/dhamidi/ashe/extract"
	"github.com/dhamidi/ashe/llm"
	"github.com/dhamidi/ashe/logging"
	"github.com/dhamidi/ashe/methodref"
	"github.com/dhamidi/ashe/replace"
	"github.com/dhamidi/ashe/slicer"
)

// WorkItem is one (source-file, method-reference) pair the driver
// refines, plus the project root it is resolved against. Reference is
// the raw, not-yet-validated canonical reference text; Run normalizes
// and validates it as its first step.
type WorkItem struct {
	ProjectRoot string
	TargetFile  string
	Reference   string
}

const lineSeparator = "\n"

// Run drives a single WorkItem through slice -> check -> repair ->
// splice -> cleanup. A nil error means the method type-checked cleanly
// and the fix (if any) was spliced back into item.TargetFile. A non-nil
// error is always an *errs.Error carrying the terminal state's Kind.
func Run(item WorkItem, cfg *config.Config, client *llm.Client) error {
	identity := methodref.Normalize(item.Reference)

	if !methodref.ValidFilePath(item.TargetFile) || !methodref.ValidReferenceForm(identity) {
		err := errs.Newf(errs.FormatError, "invalid file path or method reference for %s", identity)
		logging.WorkItemOutcome(identity, "FormatError", err.Error())
		return err
	}

	ref, err := methodref.Parse(identity)
	if err != nil {
		logging.WorkItemOutcome(identity, "FormatError", err.Error())
		return errs.Wrap(errs.FormatError, err, "parsing method reference "+identity)
	}

	toolPath, err := cfg.RequireSlicerToolPath()
	if err != nil {
		logging.WorkItemOutcome(identity, "MinimizationFailed", err.Error())
		return errs.Wrap(errs.MinimizationFailed, err, "slicer not configured")
	}

	sliceDir, err := slicer.Slice(slicer.Options{ToolPath: toolPath}, item.ProjectRoot, item.TargetFile, ref)
	if err != nil {
		logging.WorkItemOutcome(identity, "MinimizationFailed", err.Error())
		return errs.Wrap(errs.MinimizationFailed, err, "slicing "+identity)
	}
	defer slicer.Cleanup(sliceDir)

	slicedFile := filepath.Join(sliceDir, filepath.Base(item.TargetFile))

	methodName, err := methodref.ParseMethodName(identity)
	if err != nil {
		logging.WorkItemOutcome(identity, "FormatError", err.Error())
		return errs.Wrap(errs.FormatError, err, "extracting method name from "+identity)
	}

	maxIterations := cfg.DriverMaxIterations
	if maxIterations <= 0 {
		maxIterations = 25
	}

	checkerOpts := checker.Options{
		ToolName:  cfg.CheckerToolName,
		JarPath:   cfg.CheckerJarPath,
		Classpath: cfg.CheckerClasspath,
		Processor: cfg.CheckerProcessor,
	}

	for iteration := 0; ; iteration++ {
		if iteration >= maxIterations {
			err := errs.Newf(errs.MinimizationFailed, "%s did not converge within %d iterations", identity, maxIterations).
				WithFix("increase driver.max_iterations or inspect the checker output manually")
			logging.WorkItemOutcome(identity, "MinimizationFailed", err.Error())
			return err
		}

		errorText, err := checker.Check(checkerOpts, item.ProjectRoot, slicedFile)
		if err != nil {
			logging.WorkItemOutcome(identity, "CheckerError", err.Error())
			return errs.Wrap(errs.CheckerError, err, "checking "+slicedFile)
		}

		if errorText == "" {
			if err := finishClean(item, slicedFile, methodName, identity); err != nil {
				return err
			}
			logging.WorkItemOutcome(identity, "Clean", "")
			return nil
		}

		if client.IsDryRun() {
			err := errs.New(errs.NoPatch, "dry-run mode skips repair; method still has errors")
			logging.WorkItemOutcome(identity, "NoPatch", err.Error())
			return err
		}

		classDecl, tree, err := ResolveClassByMethodName(slicedFile, methodName)
		if err != nil {
			logging.WorkItemOutcome(identity, "NotFound", err.Error())
			return err
		}

		classText, err := ast.RenderNode(classDecl.Node, tree.Source, tree.Comments)
		if err != nil {
			logging.WorkItemOutcome(identity, "ParseError", err.Error())
			return err
		}

		prompt := classText + lineSeparator +
			cfg.LlmPromptPrefix + lineSeparator +
			errorText + lineSeparator +
			cfg.LlmPromptSuffix

		reply, err := client.Fetch(prompt)
		if err != nil {
			logging.WorkItemOutcome(identity, "LlmError", err.Error())
			return err
		}

		patch := extract.Patch(reply)
		if patch == "" {
			err := errs.New(errs.NoPatch, "llm reply contained no usable fenced code block")
			logging.WorkItemOutcome(identity, "NoPatch", err.Error())
			return err
		}

		ok, err := replace.Method(slicedFile, classDecl.Name(), patch)
		if err != nil {
			logging.WorkItemOutcome(identity, "PatchApplyFailed", err.Error())
			return errs.Wrap(errs.PatchApplyFailed, err, "applying patch to "+slicedFile)
		}
		if !ok {
			err := errs.Newf(errs.PatchApplyFailed, "no override-equivalent method found for patch in %s", slicedFile)
			logging.WorkItemOutcome(identity, "PatchApplyFailed", err.Error())
			return err
		}
	}
}

// finishClean splices the now-clean method from slicedFile back into
// item.TargetFile and reports a splice failure as SpliceFailed.
func finishClean(item WorkItem, slicedFile, methodName, identity string) error {
	ok, err := replace.OriginalTargetMethod(slicedFile, item.TargetFile, methodName)
	if err != nil {
		logging.WorkItemOutcome(identity, "SpliceFailed", err.Error())
		return errs.Wrap(errs.SpliceFailed, err, "splicing "+methodName+" back into "+item.TargetFile)
	}
	if !ok {
		err := errs.Newf(errs.SpliceFailed, "no override-equivalent method found in %s to splice %s into", item.TargetFile, methodName)
		logging.WorkItemOutcome(identity, "SpliceFailed", err.Error())
		return err
	}
	return nil
}
