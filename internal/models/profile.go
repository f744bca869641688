package models

// 프로필 카드, profile_<id>.json 파일 하나에 저장됨
type Profile struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Gender string `json:"gender"`
	Hobby  string `json:"hobby"`
}

// 삭제 화면용 카드, ID는 항상 파일 이름에서 가져옴
type ProfileCard struct {
	Profile
	File string `json:"file"`
}
