package clip

// Package clip implements the export pipeline: it validates trim
// selections, walks a fixed sequence of progress milestones, synthesizes
// the placeholder media buffer, and writes the clip file to the output
// directory. It manages task lifecycle, concurrency limits, and progress
// propagation to the UI.
