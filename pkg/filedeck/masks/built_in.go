package masks

func BuiltIn() []Mask {
	return []Mask{
		{Name: "Video", Patterns: []Pattern{
			{Type: Inclusive, Glob: "*.{mp4,mov,webm,mkv,avi}"},
		}},
		{Name: "Audio", Patterns: []Pattern{
			{Type: Inclusive, Glob: "*.{mp3,wav,flac,ogg,m4a}"},
		}},
		{Name: "Documents", Patterns: []Pattern{
			{Type: Inclusive, Glob: "*.{pdf,doc,docx,xlsx,txt,md}"},
		}},
		{Name: "Images", Patterns: []Pattern{
			{Type: Inclusive, Glob: "*.{jpg,jpeg,png,gif,svg,webp}"},
		}},
		{Name: "No archive", Patterns: []Pattern{
			{Type: Exclusive, Glob: "*/archive/*"},
		}},
	}
}
