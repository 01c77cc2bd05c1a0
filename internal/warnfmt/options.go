package warnfmt

// PrettyOpts configures pretty-printing of warnings.
type PrettyOpts struct {
	Color    bool
	Width    int // максимальная ширина строки, 0 - не ограничено
	ShowData bool
}

// JSONOpts configures JSON output of warnings.
type JSONOpts struct {
	IncludeData bool
	Max         int // обрезка вывода, не коллекции
}
