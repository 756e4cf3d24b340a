package theme

var tokyoNight = Palette{
	Primary:             adaptive("#2e7de9", "#82aaff"),
	Secondary:           adaptive("#9854f1", "#c099ff"),
	Accent:              adaptive("#b15c00", "#ff966c"),
	Error:               adaptive("#f52a65", "#ff757f"),
	Warning:             adaptive("#b15c00", "#ff966c"),
	Success:             adaptive("#587539", "#c3e88d"),
	Info:                adaptive("#0db9d7", "#7dcfff"),
	Text:                adaptive("#3760bf", "#c8d3f5"),
	TextMuted:           adaptive("#848cb5", "#636da6"),
	TextEmphasized:      adaptive("#8c6c3e", "#ffc777"),
	Background:          adaptive("#e1e2e7", "#222436"),
	BackgroundSecondary: adaptive("#c8c9ce", "#2f334d"),
	BackgroundDarker:    adaptive("#d5d6db", "#1e2030"),
	BorderNormal:        adaptive("#a8aecb", "#3b4261"),
	BorderFocused:       adaptive("#2e7de9", "#82aaff"),
	BorderDim:           adaptive("#c8c9ce", "#292e42"),
}

var catppuccin = Palette{
	Primary:             adaptive("#1e66f5", "#89b4fa"),
	Secondary:           adaptive("#8839ef", "#cba6f7"),
	Accent:              adaptive("#fe640b", "#fab387"),
	Error:               adaptive("#d20f39", "#f38ba8"),
	Warning:             adaptive("#fe640b", "#fab387"),
	Success:             adaptive("#40a02b", "#a6e3a1"),
	Info:                adaptive("#1e66f5", "#89b4fa"),
	Text:                adaptive("#4c4f69", "#cdd6f4"),
	TextMuted:           adaptive("#9ca0b0", "#6c7086"),
	TextEmphasized:      adaptive("#dc8a78", "#f5e0dc"),
	Background:          adaptive("#eff1f5", "#1e1e2e"),
	BackgroundSecondary: adaptive("#e6e9ef", "#313244"),
	BackgroundDarker:    adaptive("#dce0e8", "#181825"),
	BorderNormal:        adaptive("#9ca0b0", "#6c7086"),
	BorderFocused:       adaptive("#1e66f5", "#89b4fa"),
	BorderDim:           adaptive("#ccd0da", "#45475a"),
}

var gruvbox = Palette{
	Primary:             adaptive("#076678", "#83a598"),
	Secondary:           adaptive("#8f3f71", "#d3869b"),
	Accent:              adaptive("#b57614", "#fabd2f"),
	Error:               adaptive("#9d0006", "#fb4934"),
	Warning:             adaptive("#af3a03", "#fe8019"),
	Success:             adaptive("#79740e", "#b8bb26"),
	Info:                adaptive("#076678", "#83a598"),
	Text:                adaptive("#3c3836", "#ebdbb2"),
	TextMuted:           adaptive("#7c6f64", "#a89984"),
	TextEmphasized:      adaptive("#b57614", "#fabd2f"),
	Background:          adaptive("#fbf1c7", "#282828"),
	BackgroundSecondary: adaptive("#ebdbb2", "#504945"),
	BackgroundDarker:    adaptive("#d5c4a1", "#1d2021"),
	BorderNormal:        adaptive("#bdae93", "#504945"),
	BorderFocused:       adaptive("#076678", "#83a598"),
	BorderDim:           adaptive("#d5c4a1", "#3c3836"),
}

var oneDark = Palette{
	Primary:             adaptive("#4078f2", "#61afef"),
	Secondary:           adaptive("#a626a4", "#c678dd"),
	Accent:              adaptive("#c18401", "#e5c07b"),
	Error:               adaptive("#e45649", "#e06c75"),
	Warning:             adaptive("#da8548", "#d19a66"),
	Success:             adaptive("#50a14f", "#98c379"),
	Info:                adaptive("#0184bc", "#56b6c2"),
	Text:                adaptive("#383a42", "#abb2bf"),
	TextMuted:           adaptive("#a0a1a7", "#5c6370"),
	TextEmphasized:      adaptive("#c18401", "#e5c07b"),
	Background:          adaptive("#fafafa", "#282c34"),
	BackgroundSecondary: adaptive("#e5e5e6", "#3e4451"),
	BackgroundDarker:    adaptive("#f0f0f0", "#21252b"),
	BorderNormal:        adaptive("#d3d3d3", "#3b4048"),
	BorderFocused:       adaptive("#4078f2", "#61afef"),
	BorderDim:           adaptive("#e5e5e6", "#2c313c"),
}

var monokai = Palette{
	Primary:             adaptive("#0095a8", "#78dce8"),
	Secondary:           adaptive("#6e5494", "#ab9df2"),
	Accent:              adaptive("#c18401", "#ffd866"),
	Error:               adaptive("#d32f2f", "#ff6188"),
	Warning:             adaptive("#e65100", "#fc9867"),
	Success:             adaptive("#388e3c", "#a9dc76"),
	Info:                adaptive("#0095a8", "#78dce8"),
	Text:                adaptive("#2d2a2e", "#fcfcfa"),
	TextMuted:           adaptive("#939293", "#727072"),
	TextEmphasized:      adaptive("#c18401", "#ffd866"),
	Background:          adaptive("#fafafa", "#2d2a2e"),
	BackgroundSecondary: adaptive("#e8e8e8", "#403e41"),
	BackgroundDarker:    adaptive("#f0f0f0", "#221f22"),
	BorderNormal:        adaptive("#d0d0d0", "#5b595c"),
	BorderFocused:       adaptive("#0095a8", "#78dce8"),
	BorderDim:           adaptive("#e8e8e8", "#403e41"),
}

func init() {
	// tokyonight first so it is the default.
	Register(DefaultName, tokyoNight)
	Register("catppuccin", catppuccin)
	Register("gruvbox", gruvbox)
	Register("onedark", oneDark)
	Register("monokai", monokai)
}
