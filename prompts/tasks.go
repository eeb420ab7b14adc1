package prompts

const Document = (`
Write developer documentation for the following project in Markdown.
Cover the purpose of the project, how the pieces fit together, the main entry
points, and anything a new contributor must know before changing the code.
Document what the code does, not what it should do. Do not invent features.
Output only the Markdown document, no preamble.
`)

const Explain = (`
Explain what the following code does, for a developer seeing it for the first
time. Walk through the structure, the data flow, and any non-obvious parts.
Point out assumptions and edge cases the code relies on. Be concrete; refer to
the actual names in the code.
`)

const Refactor = (`
Refactor the following file to improve clarity, naming, and structure, without
changing its observable behavior. Preserve error handling, boundary checks,
and comments that explain intent. Do not remove logic that looks redundant
unless it is provably unreachable.
Return the complete rewritten file in a single fenced code block, and nothing
else outside it.
`)

const Test = (`
Write a test file for the following source file, in the same language and the
language's conventional test style. Cover the main behaviors and the edge
cases visible in the code. Tests must be self-contained and deterministic.
Return the complete test file in a single fenced code block, and nothing else
outside it.
`)

const Docstrings = (`
Add documentation comments to the following file, in the language's
conventional style. Document every exported or public declaration; leave
existing comments intact unless they are wrong. Do not change any code.
Return the complete updated file in a single fenced code block, and nothing
else outside it.
`)

const Security = (`
Review the following code for security problems: injection, path traversal,
unsafe deserialization, missing validation of external input, secrets in
code, race conditions with security impact. For each finding give the
location, the risk, and a concrete fix. State clearly when you find nothing.
`)
